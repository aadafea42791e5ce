package sessions

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions параметры подключения к Redis
type RedisOptions struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// RedisStore хранит токены в Redis, истечение выполняет сам Redis (SET ... EX)
// Подходит для нескольких экземпляров сервиса за балансировщиком
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisStore подключается к Redis и проверяет соединение
func NewRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		DialTimeout:  5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: connect to redis %s: %v", ErrStore, opts.Addr, err)
	}

	return NewRedisStoreWithClient(client, opts.KeyPrefix), nil
}

// NewRedisStoreWithClient оборачивает готовый клиент
func NewRedisStoreWithClient(client *redis.Client, keyPrefix string) *RedisStore {
	return &RedisStore{client: client, keyPrefix: keyPrefix}
}

func (s *RedisStore) key(token string) string {
	return s.keyPrefix + token
}

// Save сохраняет токен на ttl
func (s *RedisStore) Save(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return ErrInvalidTTL
	}
	if err := s.client.Set(ctx, s.key(token), 1, ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - set: %v", ErrStore, err)
	}
	return nil
}

// Exists true, если токен есть в Redis
func (s *RedisStore) Exists(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: Exists - exists: %v", ErrStore, err)
	}
	return n > 0, nil
}

// Delete удаляет токен, отсутствие ключа не ошибка
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - del: %v", ErrStore, err)
	}
	return nil
}

// Close закрывает соединение с Redis
func (s *RedisStore) Close() error {
	return s.client.Close()
}
