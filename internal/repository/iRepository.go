package repository

import (
	"context"

	"bookshelf_tgbot/internal/model"
)

type IRepository interface {
	GetDeviceEmail(ctx context.Context, chatId int64) (email string, err error)
	UpsertDeviceEmail(ctx context.Context, chatId int64, email string) error
	DeleteDeviceEmail(ctx context.Context, chatId int64) error
	AddDownload(ctx context.Context, chatId int64, bookId string, title string) error
	GetRecentDownloads(ctx context.Context, chatId int64, limit int) ([]model.DownloadRecord, error)
}
