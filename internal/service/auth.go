package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/library-management-api/internal/models"
	"github.com/pribylovaa/library-management-api/internal/pkg/log"
	"github.com/pribylovaa/library-management-api/internal/storage"
)

// RegisterInput — данные регистрации нового пользователя.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Register регистрирует нового пользователя и выпускает короткоживущий
// токен для немедленной аутентификации.
//
// Предварительная проверка email — быстрый путь; гонку check-then-insert
// закрывает уникальный индекс в БД (storage.ErrAlreadyExists).
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	const op = "service.auth.Register"

	if err := validateRegisterInput(&in); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	_, err := s.storage.UserByEmail(ctx, in.Email)
	if err == nil {
		return nil, "", fmt.Errorf("%s: %w", op, ErrEmailTaken)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	hashedPassword, err := hashPassword(in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New(),
		Email:        in.Email,
		PasswordHash: hashedPassword,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, "", fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}

		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.issueToken(user.ID, s.cfg.AccessTokenTTL, now)
	if err != nil {
		log.From(ctx).Error("register_token_sign_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	return user, token, nil
}

// Login выполняет вход по email+пароль и выпускает пару токенов.
// Неизвестный email и неверный пароль дают одинаковую ошибку.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, *models.TokenPair, error) {
	const op = "service.auth.Login"

	normEmail, err := validateEmail(email)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if len(password) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	user, err := s.storage.UserByEmail(ctx, normEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(user.PasswordHash, password) {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	pair, err := s.issueTokenPair(user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, pair, nil
}

// RefreshTokens обменивает refresh-токен на новую пару токенов.
//
// Старый refresh-токен при этом не отзывается (denylist'а нет):
// утёкший токен остаётся действительным до естественного истечения срока.
func (s *Service) RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	const op = "service.auth.RefreshTokens"

	if strings.TrimSpace(refreshToken) == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingToken)
	}

	uid, err := s.parseToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.storage.UserByID(ctx, uid); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pair, err := s.issueTokenPair(uid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pair, nil
}

// VerifyAccessToken проверяет access-токен и возвращает ID пользователя.
// Используется мидлваром авторизации.
func (s *Service) VerifyAccessToken(tokenStr string) (uuid.UUID, error) {
	const op = "service.auth.VerifyAccessToken"

	uid, err := s.parseToken(tokenStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return uid, nil
}

// issueTokenPair выпускает новую пару access+refresh токенов.
func (s *Service) issueTokenPair(userID uuid.UUID) (*models.TokenPair, error) {
	const op = "service.auth.issueTokenPair"

	now := time.Now().UTC()

	accessToken, err := s.issueToken(userID, s.cfg.AccessTokenTTL, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refreshToken, err := s.issueToken(userID, s.cfg.RefreshTokenTTL, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		AccessExpiresAt: now.Add(s.cfg.AccessTokenTTL),
	}, nil
}

// hashPassword хэширует пароль с помощью bcrypt (соль генерируется
// на каждый вызов и встроена в результат).
func hashPassword(password string) (string, error) {
	const op = "service.auth.hashPassword"

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(bytes), nil
}

// checkPassword сравнивает пароль с хэшем.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// validateRegisterInput нормализует и проверяет поля регистрации,
// накапливая пофилдовые сообщения в ValidationError.
func validateRegisterInput(in *RegisterInput) error {
	var messages []string

	normEmail, err := validateEmail(in.Email)
	if err != nil {
		messages = append(messages, "Email must be a valid email address")
	} else {
		in.Email = normEmail
	}

	if msg := passwordPolicyViolation(in.Password); msg != "" {
		messages = append(messages, msg)
	}

	in.FirstName = strings.TrimSpace(in.FirstName)
	if in.FirstName == "" {
		messages = append(messages, "First name is required")
	} else if len([]rune(in.FirstName)) > 50 {
		messages = append(messages, "First name cannot exceed 50 characters")
	}

	in.LastName = strings.TrimSpace(in.LastName)
	if in.LastName == "" {
		messages = append(messages, "Last name is required")
	} else if len([]rune(in.LastName)) > 50 {
		messages = append(messages, "Last name cannot exceed 50 characters")
	}

	if len(messages) > 0 {
		return newValidationError(messages...)
	}

	return nil
}

// validateEmail проверяет базовый формат email и обрезает пробелы снаружи.
func validateEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", errors.New("empty email")
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return "", err
	}

	return strings.ToLower(email), nil
}

// passwordPolicyViolation проверяет минимальные требования к паролю.
// Политика: длина >= 8, хотя бы одна строчная, заглавная, цифра и спецсимвол.
// Возвращает сообщение для клиента или "" при корректном пароле.
func passwordPolicyViolation(pw string) string {
	if len(pw) == 0 {
		return "Password is required"
	}

	if len([]rune(pw)) < 8 {
		return "Password must be at least 8 characters long"
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if !(hasLower && hasUpper && hasDigit && hasSpecial) {
		return "Password must contain lowercase, uppercase, digit and special characters"
	}

	return ""
}
