package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/library-management-api/internal/config"
	"github.com/pribylovaa/library-management-api/mocks"
)

func testAuthCfg() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:       "unit-test-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
		Issuer:          "library-api",
		Audience:        []string{"library-clients"},
	}
}

func newServiceWithMock(t *testing.T) (*Service, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockSt := mocks.NewMockStorage(ctrl)
	svc := New(mockSt, testAuthCfg())
	return svc, mockSt, ctrl
}

func TestIssueToken_AndParse_OK(t *testing.T) {
	svc, _, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	uid := uuid.New()
	now := time.Now().UTC()

	signed, err := svc.issueToken(uid, testAuthCfg().AccessTokenTTL, now)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	parsed, err := svc.parseToken(signed)
	require.NoError(t, err)
	require.Equal(t, uid, parsed)
}

func TestParseToken_Expired(t *testing.T) {
	svc, _, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	uid := uuid.New()
	// exp в прошлом.
	signed, err := svc.issueToken(uid, -time.Minute, time.Now().UTC())
	require.NoError(t, err)

	_, err = svc.parseToken(signed)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseToken_Garbage(t *testing.T) {
	svc, _, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	_, err := svc.parseToken("not-a-jwt")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_TamperedSignature(t *testing.T) {
	svc, _, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	uid := uuid.New()
	signed, err := svc.issueToken(uid, time.Minute, time.Now().UTC())
	require.NoError(t, err)

	tampered := signed[:len(signed)-2] + "xx"
	_, err = svc.parseToken(tampered)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_WrongAlg_WrongIssuer_WrongAudience(t *testing.T) {
	svc, _, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	secret := []byte(testAuthCfg().JWTSecret)
	uid := uuid.New()
	now := time.Now().UTC()

	sign := func(t *testing.T, method jwt.SigningMethod, claims jwt.RegisteredClaims) string {
		t.Helper()
		token := jwt.NewWithClaims(method, claims)
		signed, err := token.SignedString(secret)
		require.NoError(t, err)
		return signed
	}

	base := jwt.RegisteredClaims{
		Subject:   uid.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		Issuer:    testAuthCfg().Issuer,
		Audience:  jwt.ClaimStrings(testAuthCfg().Audience),
	}

	t.Run("wrong alg", func(t *testing.T) {
		signed := sign(t, jwt.SigningMethodHS512, base)
		_, err := svc.parseToken(signed)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		claims := base
		claims.Issuer = "someone-else"
		signed := sign(t, jwt.SigningMethodHS256, claims)
		_, err := svc.parseToken(signed)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong audience", func(t *testing.T) {
		claims := base
		claims.Audience = jwt.ClaimStrings{"other-clients"}
		signed := sign(t, jwt.SigningMethodHS256, claims)
		_, err := svc.parseToken(signed)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestParseToken_WrongSecret(t *testing.T) {
	svc, _, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	otherCfg := testAuthCfg()
	otherCfg.JWTSecret = "another-secret"
	other := New(nil, otherCfg)

	signed, err := other.issueToken(uuid.New(), time.Minute, time.Now().UTC())
	require.NoError(t, err)

	_, err = svc.parseToken(signed)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_NonUUIDSubject(t *testing.T) {
	svc, _, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   "42",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		Issuer:    testAuthCfg().Issuer,
		Audience:  jwt.ClaimStrings(testAuthCfg().Audience),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testAuthCfg().JWTSecret))
	require.NoError(t, err)

	_, err = svc.parseToken(signed)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
}
