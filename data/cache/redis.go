package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"bookshelf_tgbot/config"
	"bookshelf_tgbot/internal/model"
	"bookshelf_tgbot/utils"

	"github.com/redis/go-redis/v9"
)

// RedisCache кэширует ответы платформы: список книг пользователя и индекс
// скачанных файлов. Инвалидация списка — единственный механизм консистентности,
// мутации обязаны вызывать ее только после успешного ответа платформы.
type RedisCache struct {
	redis *redis.Client
	cfg   *config.Config
}

func NewRedisCache(cfg *config.Config, redisClient *redis.Client) *RedisCache {
	return &RedisCache{redis: redisClient, cfg: cfg}
}

func (r *RedisCache) createBooksKey(userID string) string {
	return fmt.Sprintf("user:%s:books", userID)
}

func (r *RedisCache) createBlobKey(fileURL string) string {
	sum := sha1.Sum([]byte(fileURL))
	return fmt.Sprintf("blob:%s", hex.EncodeToString(sum[:]))
}

func (r *RedisCache) GetBooks(ctx context.Context, userID string) ([]model.Book, error) {
	op := "RedisCache.GetBooks"
	rqID := utils.GetRequestIDFromCtx(ctx)
	key := r.createBooksKey(userID)

	res, err := r.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		slog.Error("failed on redis.Get", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", key))
		return nil, err
	}

	var books []model.Book
	if err = json.Unmarshal([]byte(res), &books); err != nil {
		slog.Error("can't unmarshall books", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, errors.New("can't unmarshall books")
	}

	return books, nil
}

func (r *RedisCache) SetBooks(ctx context.Context, userID string, books []model.Book) error {
	op := "RedisCache.SetBooks"
	rqID := utils.GetRequestIDFromCtx(ctx)

	booksJson, err := json.Marshal(books)
	if err != nil {
		slog.Error("can't marshall books", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return errors.New("can't marshall books")
	}

	_, err = r.redis.Set(ctx, r.createBooksKey(userID), booksJson, r.cfg.BooksCacheTTL).Result()
	if err != nil {
		slog.Error("failed on redis.Set", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}

	return nil
}

func (r *RedisCache) InvalidateBooks(ctx context.Context, userID string) error {
	op := "RedisCache.InvalidateBooks"
	rqID := utils.GetRequestIDFromCtx(ctx)

	_, err := r.redis.Del(ctx, r.createBooksKey(userID)).Result()
	if err != nil {
		slog.Error("failed on redis.Del", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}

	slog.Debug("books cache invalidated", slog.String("rqID", rqID), slog.String("op", op), slog.String("userID", userID))

	return nil
}

func (r *RedisCache) GetBlobPath(ctx context.Context, fileURL string) (string, error) {
	op := "RedisCache.GetBlobPath"
	rqID := utils.GetRequestIDFromCtx(ctx)

	res, err := r.redis.Get(ctx, r.createBlobKey(fileURL)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		slog.Error("failed on redis.Get", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return "", err
	}

	return res, nil
}

func (r *RedisCache) SetBlobPath(ctx context.Context, fileURL string, path string) error {
	op := "RedisCache.SetBlobPath"
	rqID := utils.GetRequestIDFromCtx(ctx)

	_, err := r.redis.Set(ctx, r.createBlobKey(fileURL), path, r.cfg.BlobCacheTTL).Result()
	if err != nil {
		slog.Error("failed on redis.Set", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}

	return nil
}
