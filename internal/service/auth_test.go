package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/library-management-api/internal/models"
	"github.com/pribylovaa/library-management-api/internal/storage"
)

func testRegisterInput() RegisterInput {
	return RegisterInput{
		Email:     "User@Example.com",
		Password:  "Abcdef1!",
		FirstName: "Alice",
		LastName:  "Smith",
	}
}

func mustHashPW(t *testing.T, pw string) string {
	t.Helper()
	h, err := hashPassword(pw)
	require.NoError(t, err)
	return h
}

func requireValidation(t *testing.T, err error, wantMsg string) {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Messages, wantMsg)
}

func TestRegister_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	ctx := context.Background()
	norm := "user@example.com"

	st.EXPECT().UserByEmail(gomock.Any(), norm).Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			require.Equal(t, norm, u.Email)
			require.NotEqual(t, uuid.Nil, u.ID)
			require.NotEmpty(t, u.PasswordHash)
			require.NotEqual(t, "Abcdef1!", u.PasswordHash)
			return nil
		})

	user, token, err := svc.Register(ctx, testRegisterInput())
	require.NoError(t, err)
	require.Equal(t, norm, user.Email)
	require.NotEmpty(t, token)

	// Выпущенный токен сразу пригоден для аутентификации.
	uid, err := svc.VerifyAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, uid)
}

func TestRegister_InvalidEmail(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	in := testRegisterInput()
	in.Email = "not-an-email"

	_, _, err := svc.Register(context.Background(), in)
	require.Error(t, err)
	requireValidation(t, err, "Email must be a valid email address")
}

func TestRegister_WeakOrEmptyPassword(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	in := testRegisterInput()
	in.Password = ""
	_, _, err := svc.Register(context.Background(), in)
	requireValidation(t, err, "Password is required")

	in.Password = "Ab1!"
	_, _, err = svc.Register(context.Background(), in)
	requireValidation(t, err, "Password must be at least 8 characters long")

	in.Password = "abcdefgh"
	_, _, err = svc.Register(context.Background(), in)
	requireValidation(t, err, "Password must contain lowercase, uppercase, digit and special characters")
}

func TestRegister_MissingNames(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	in := testRegisterInput()
	in.FirstName = "   "
	in.LastName = ""

	_, _, err := svc.Register(context.Background(), in)
	requireValidation(t, err, "First name is required")
	requireValidation(t, err, "Last name is required")
}

func TestRegister_EmailTaken_OnLookup(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").
		Return(&models.User{ID: uuid.New(), Email: "user@example.com"}, nil)

	_, _, err := svc.Register(context.Background(), testRegisterInput())
	require.Error(t, err)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_EmailTaken_OnSave(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	// Гонка check-then-insert: lookup не нашёл, но insert упёрся
	// в уникальный индекс.
	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").
		Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
		Return(storage.ErrAlreadyExists)

	_, _, err := svc.Register(context.Background(), testRegisterInput())
	require.Error(t, err)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_StorageLookupError_Propagated(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").
		Return(nil, errors.New("db down"))

	_, _, err := svc.Register(context.Background(), testRegisterInput())
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	email := "user@example.com"
	pw := "Abcdef1!"
	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: mustHashPW(t, pw),
	}

	st.EXPECT().UserByEmail(gomock.Any(), email).Return(user, nil)

	got, pair, err := svc.Login(context.Background(), "User@Example.com", pw)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	require.WithinDuration(t, time.Now().Add(testAuthCfg().AccessTokenTTL), pair.AccessExpiresAt, 2*time.Second)

	uid, err := svc.VerifyAccessToken(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, uid)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: mustHashPW(t, "Abcdef1!"),
	}

	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").Return(user, nil)

	_, _, err := svc.Login(context.Background(), "user@example.com", "WrongPass1!")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail_SameError(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	st.EXPECT().UserByEmail(gomock.Any(), "ghost@example.com").
		Return(nil, storage.ErrNotFound)

	// Неизвестный email неотличим от неверного пароля.
	_, _, err := svc.Login(context.Background(), "ghost@example.com", "Abcdef1!")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_MalformedEmailOrEmptyPassword(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	_, _, err := svc.Login(context.Background(), "not-an-email", "Abcdef1!")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "user@example.com", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshTokens_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	uid := uuid.New()
	refresh, err := svc.issueToken(uid, testAuthCfg().RefreshTokenTTL, time.Now().UTC().Add(-time.Second))
	require.NoError(t, err)

	st.EXPECT().UserByID(gomock.Any(), uid).
		Return(&models.User{ID: uid, Email: "user@example.com"}, nil)

	pair, err := svc.RefreshTokens(context.Background(), refresh)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	// Новая пара выпущена с более поздним iat и не совпадает со старым токеном.
	require.NotEqual(t, refresh, pair.RefreshToken)

	got, err := svc.VerifyAccessToken(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, uid, got)
}

func TestRefreshTokens_Missing(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	_, err := svc.RefreshTokens(context.Background(), "   ")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrMissingToken)
}

func TestRefreshTokens_Expired(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	expired, err := svc.issueToken(uuid.New(), -time.Minute, time.Now().UTC())
	require.NoError(t, err)

	_, err = svc.RefreshTokens(context.Background(), expired)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestRefreshTokens_Invalid(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	_, err := svc.RefreshTokens(context.Background(), "garbage.token.value")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokens_UserGone(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	uid := uuid.New()
	refresh, err := svc.issueToken(uid, time.Hour, time.Now().UTC())
	require.NoError(t, err)

	st.EXPECT().UserByID(gomock.Any(), uid).Return(nil, storage.ErrNotFound)

	_, err = svc.RefreshTokens(context.Background(), refresh)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestVerifyAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	uid := uuid.New()
	token, err := svc.issueToken(uid, time.Minute, time.Now().UTC())
	require.NoError(t, err)

	got, err := svc.VerifyAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, uid, got)
}

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	hash := mustHashPW(t, "Abcdef1!")
	require.True(t, checkPassword(hash, "Abcdef1!"))
	require.False(t, checkPassword(hash, "abcdef1!"))
	require.False(t, checkPassword(hash, ""))
}
