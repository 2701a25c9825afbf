package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/library-management-api/internal/config"
	"github.com/pribylovaa/library-management-api/internal/models"
	"github.com/pribylovaa/library-management-api/internal/service"
	"github.com/pribylovaa/library-management-api/internal/storage"
	"github.com/pribylovaa/library-management-api/mocks"
)

// Сквозные тесты REST-поверхности: настоящий роутер и сервис,
// хранилище — gomock с in-memory поведением для пользователей.

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	st := mocks.NewMockStorage(ctrl)

	byEmail := map[string]*models.User{}
	byID := map[uuid.UUID]*models.User{}

	st.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, email string) (*models.User, error) {
			if u, ok := byEmail[email]; ok {
				return u, nil
			}
			return nil, storage.ErrNotFound
		})
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, u *models.User) error {
			if _, ok := byEmail[u.Email]; ok {
				return storage.ErrAlreadyExists
			}
			cp := *u
			byEmail[u.Email] = &cp
			byID[u.ID] = &cp
			return nil
		})
	st.EXPECT().UserByID(gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*models.User, error) {
			if u, ok := byID[id]; ok {
				return u, nil
			}
			return nil, storage.ErrNotFound
		})
	st.EXPECT().Books(gomock.Any()).AnyTimes().Return([]models.Book{}, nil)

	svc := service.New(st, config.AuthConfig{
		JWTSecret:       "e2e-test-secret",
		AccessTokenTTL:  5 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
		Issuer:          "library-api",
		Audience:        []string{"library-clients"},
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(NewRouter(svc, Options{Logger: logger, Timeout: 5 * time.Second}))
	t.Cleanup(srv.Close)

	return srv
}

func postJSON(t *testing.T, url string, body any) (*http.Response, map[string]any) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestHealthcheck_Public(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthcheck")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRegister_ValidationMessages(t *testing.T) {
	srv := newTestServer(t)

	resp, body := postJSON(t, srv.URL+"/register", map[string]string{
		"email":     "not-an-email",
		"password":  "weak",
		"firstName": "",
		"lastName":  "Smith",
	})

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// message — массив пофилдовых сообщений.
	msgs, ok := body["message"].([]any)
	require.True(t, ok, "message must be an array, got %T", body["message"])
	require.Contains(t, msgs, "Email must be a valid email address")
	require.Contains(t, msgs, "First name is required")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	srv := newTestServer(t)

	in := map[string]string{
		"email":     "dup@example.com",
		"password":  "Abcd123!",
		"firstName": "A",
		"lastName":  "B",
	}

	resp, _ := postJSON(t, srv.URL+"/register", in)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := postJSON(t, srv.URL+"/register", in)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "User already exists", body["message"])
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/books")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/books", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer bogus-token")

	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
}

// TestAuthFlow_EndToEnd — полный сценарий: регистрация, логин с неверным
// паролем, логин, доступ к защищённому маршруту, обмен refresh-токена.
func TestAuthFlow_EndToEnd(t *testing.T) {
	srv := newTestServer(t)

	// Регистрация.
	resp, body := postJSON(t, srv.URL+"/register", map[string]string{
		"email":     "alice@example.com",
		"password":  "Abcd123!",
		"firstName": "Alice",
		"lastName":  "Smith",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "User created successfully", body["message"])
	require.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "alice@example.com", user["email"])
	require.Equal(t, "Alice Smith", user["fullName"])

	// Логин с неверным паролем — generic-ответ.
	resp, body = postJSON(t, srv.URL+"/login", map[string]string{
		"email":    "alice@example.com",
		"password": "WrongPass1!",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "Invalid credentials", body["message"])

	// Логин с верным паролем.
	resp, body = postJSON(t, srv.URL+"/login", map[string]string{
		"email":    "alice@example.com",
		"password": "Abcd123!",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Login successful", body["message"])

	accessToken, _ := body["accessToken"].(string)
	refreshToken, _ := body["refreshToken"].(string)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	require.NotEqual(t, accessToken, refreshToken)

	// Access-токен открывает защищённый маршрут.
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/books", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	booksResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer booksResp.Body.Close()
	require.Equal(t, http.StatusOK, booksResp.StatusCode)

	// iat имеет секундную точность: ждём смены секунды, чтобы новая пара
	// гарантированно отличалась от исходной.
	time.Sleep(1100 * time.Millisecond)

	resp, body = postJSON(t, srv.URL+"/refresh", map[string]string{
		"refreshToken": refreshToken,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	newAccess, _ := body["accessToken"].(string)
	newRefresh, _ := body["refreshToken"].(string)
	require.NotEmpty(t, newAccess)
	require.NotEmpty(t, newRefresh)
	require.NotEqual(t, accessToken, newAccess)
	require.NotEqual(t, refreshToken, newRefresh)
}

func TestRefresh_ErrorMessages(t *testing.T) {
	srv := newTestServer(t)

	resp, body := postJSON(t, srv.URL+"/refresh", map[string]string{"refreshToken": ""})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "Refresh token is required", body["message"])

	resp, body = postJSON(t, srv.URL+"/refresh", map[string]string{"refreshToken": "garbage"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "Invalid refresh token", body["message"])
}
