package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/domain"
)

// Credentials учётные данные единственного администратора
// Если задан PasswordHash (bcrypt), Password игнорируется
type Credentials struct {
	Email        string
	Password     string
	PasswordHash string
}

// Service вход, выход и проверка токенов администратора
type Service struct {
	creds    Credentials
	store    SessionStore
	ttl      time.Duration
	newToken func() (string, error)
	logger   Logger
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(creds Credentials, store SessionStore, logger Logger) *Service {
	return &Service{
		creds:    creds,
		store:    store,
		ttl:      domain.SessionTTL,
		newToken: generateToken,
		logger:   logger,
	}
}

// Login проверяет учётные данные и выдаёт новый токен на domain.SessionTTL
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		s.logger.Warn("Login: missing email or password")
		return "", ErrInvalidCredentials
	}

	// Обе проверки выполняются всегда, чтобы время ответа не выдавало, какое поле неверно
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.creds.Email)) == 1
	passwordOK := s.checkPassword(password)

	if !emailOK || !passwordOK {
		s.logger.Warn("Login: invalid credentials")
		return "", ErrInvalidCredentials
	}

	token, err := s.newToken()
	if err != nil {
		s.logger.Error("Login: failed to generate token: %v", err)
		return "", fmt.Errorf("%w: Login - generate token: %v", ErrInternal, err)
	}

	if err := s.store.Save(ctx, token, s.ttl); err != nil {
		s.logger.Error("Login: failed to save session: %v", err)
		return "", fmt.Errorf("%w: Login - save session: %v", ErrInternal, err)
	}

	s.logger.Info("Login: admin session created")
	return token, nil
}

// Logout удаляет токен; пустой или неизвестный токен не ошибка
func (s *Service) Logout(ctx context.Context, token string) {
	token = strings.TrimSpace(token)
	if token == "" {
		return
	}

	if err := s.store.Delete(ctx, token); err != nil {
		s.logger.Error("Logout: failed to delete session: %v", err)
		return
	}

	s.logger.Info("Logout: admin session removed")
}

// Validate проверяет, что токен живой
func (s *Service) Validate(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrUnauthorized
	}

	ok, err := s.store.Exists(ctx, token)
	if err != nil {
		s.logger.Error("Validate: session store error: %v", err)
		return fmt.Errorf("%w: Validate - session store: %v", ErrInternal, err)
	}
	if !ok {
		return ErrUnauthorized
	}

	return nil
}

func (s *Service) checkPassword(password string) bool {
	if s.creds.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.creds.PasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.creds.Password)) == 1
}

// generateToken 32 случайных байта из crypto/rand в hex
func generateToken() (string, error) {
	buf := make([]byte, domain.SessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
