package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/domain"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/infra/sessions"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/pkg/logger"
)

type failingStore struct{ err error }

func (f failingStore) Save(context.Context, string, time.Duration) error { return f.err }
func (f failingStore) Exists(context.Context, string) (bool, error)      { return false, f.err }
func (f failingStore) Delete(context.Context, string) error              { return f.err }

type recordingStore struct {
	*sessions.MemoryStore
	ttl time.Duration
}

func (r *recordingStore) Save(ctx context.Context, token string, ttl time.Duration) error {
	r.ttl = ttl
	return r.MemoryStore.Save(ctx, token, ttl)
}

func newService(t *testing.T, creds Credentials) (*Service, *recordingStore) {
	t.Helper()
	store := &recordingStore{MemoryStore: sessions.NewMemoryStore()}
	t.Cleanup(func() { store.Close() })
	return NewService(creds, store, logger.Nop()), store
}

func TestLogin_IssuesTokenWithFixedTTL(t *testing.T) {
	svc, store := newService(t, Credentials{Email: "admin@example.com", Password: "secret"})
	ctx := context.Background()

	token, err := svc.Login(ctx, "admin@example.com", "secret")
	require.NoError(t, err)

	assert.Len(t, token, 2*domain.SessionTokenBytes)
	assert.Equal(t, 8*time.Hour, store.ttl)
	assert.NoError(t, svc.Validate(ctx, token))
}

func TestLogin_TokensAreUnique(t *testing.T) {
	svc, _ := newService(t, Credentials{Email: "a@b.c", Password: "pw"})
	ctx := context.Background()

	first, err := svc.Login(ctx, "a@b.c", "pw")
	require.NoError(t, err)
	second, err := svc.Login(ctx, "a@b.c", "pw")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLogin_WrongCredentials(t *testing.T) {
	svc, store := newService(t, Credentials{Email: "admin@example.com", Password: "secret"})

	_, err := svc.Login(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "other@example.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	assert.Equal(t, 0, store.Len())
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _ := newService(t, Credentials{Email: "a@b.c", Password: "pw"})

	_, err := svc.Login(context.Background(), "", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "a@b.c", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_BcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	svc, _ := newService(t, Credentials{Email: "a@b.c", Password: "ignored", PasswordHash: string(hash)})

	_, err = svc.Login(context.Background(), "a@b.c", "hashed-secret")
	assert.NoError(t, err)

	_, err = svc.Login(context.Background(), "a@b.c", "ignored")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_StoreFailure(t *testing.T) {
	svc := NewService(Credentials{Email: "a@b.c", Password: "pw"}, failingStore{err: errors.New("redis down")}, logger.Nop())

	_, err := svc.Login(context.Background(), "a@b.c", "pw")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestLogin_TokenGeneratorFailure(t *testing.T) {
	svc, _ := newService(t, Credentials{Email: "a@b.c", Password: "pw"})
	svc.newToken = func() (string, error) { return "", errors.New("entropy exhausted") }

	_, err := svc.Login(context.Background(), "a@b.c", "pw")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestLogout_IsIdempotent(t *testing.T) {
	svc, _ := newService(t, Credentials{Email: "a@b.c", Password: "pw"})
	ctx := context.Background()

	token, err := svc.Login(ctx, "a@b.c", "pw")
	require.NoError(t, err)

	svc.Logout(ctx, token)
	svc.Logout(ctx, token)
	svc.Logout(ctx, "")

	assert.ErrorIs(t, svc.Validate(ctx, token), ErrUnauthorized)
}

func TestValidate(t *testing.T) {
	svc, _ := newService(t, Credentials{Email: "a@b.c", Password: "pw"})
	ctx := context.Background()

	assert.ErrorIs(t, svc.Validate(ctx, ""), ErrUnauthorized)
	assert.ErrorIs(t, svc.Validate(ctx, "unknown"), ErrUnauthorized)

	failing := NewService(Credentials{}, failingStore{err: errors.New("redis down")}, logger.Nop())
	assert.ErrorIs(t, failing.Validate(ctx, "tok"), ErrInternal)
}

func TestGenerateToken(t *testing.T) {
	token, err := generateToken()
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-f]{64}$`, token)
}
