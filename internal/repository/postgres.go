package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"bookshelf_tgbot/internal/model"
	"bookshelf_tgbot/utils"

	"github.com/jmoiron/sqlx"
)

type Postgres struct {
	db *sqlx.DB
}

func NewPostgresRepo(db *sqlx.DB) *Postgres {
	return &Postgres{db}
}

func (r *Postgres) GetDeviceEmail(ctx context.Context, chatId int64) (email string, err error) {
	op := "Postgres.GetDeviceEmail"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `SELECT email FROM device_emails WHERE chat_id = $1`

	err = r.db.QueryRowxContext(ctx, query, chatId).Scan(&email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Warn(
				"No device email for chatId",
				slog.String("op", op),
				slog.String("rqID", rqID),
				slog.Int64("chatId", chatId),
			)
			return "", ErrNoRows
		}
		slog.Error(
			"Failed to get device email by chatId",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
			slog.Int64("chatId", chatId),
		)
		return "", err
	}

	return email, nil
}

func (r *Postgres) UpsertDeviceEmail(ctx context.Context, chatId int64, email string) error {
	op := "Postgres.UpsertDeviceEmail"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `INSERT INTO device_emails (chat_id, email) VALUES ($1, $2) ON CONFLICT(chat_id) DO UPDATE SET email = EXCLUDED.email;`

	_, err := r.db.ExecContext(ctx, query, chatId, email)
	if err != nil {
		slog.Error(
			"Failed to upsert device email for chatId",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
			slog.Int64("chatId", chatId),
		)
		return err
	}

	slog.Info(
		"Device email upserted successfully to DB",
		slog.String("op", op),
		slog.String("rqID", rqID),
		slog.Int64("chatId", chatId),
	)
	return nil
}

func (r *Postgres) DeleteDeviceEmail(ctx context.Context, chatId int64) error {
	op := "Postgres.DeleteDeviceEmail"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `DELETE FROM device_emails WHERE chat_id = $1`

	_, err := r.db.ExecContext(ctx, query, chatId)
	if err != nil {
		slog.Error(
			"Failed to delete device email",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
			slog.Int64("chatId", chatId),
		)
		return err
	}
	return nil
}

func (r *Postgres) AddDownload(ctx context.Context, chatId int64, bookId string, title string) error {
	op := "Postgres.AddDownload"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `INSERT INTO download_history (chat_id, book_id, title) VALUES ($1, $2, $3)`

	_, err := r.db.ExecContext(ctx, query, chatId, bookId, title)
	if err != nil {
		slog.Error(
			"Failed to insert download record",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
			slog.Int64("chatId", chatId),
			slog.String("bookId", bookId),
		)
		return err
	}
	return nil
}

func (r *Postgres) GetRecentDownloads(ctx context.Context, chatId int64, limit int) ([]model.DownloadRecord, error) {
	op := "Postgres.GetRecentDownloads"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `SELECT chat_id, book_id, title, downloaded_at FROM download_history WHERE chat_id = $1 ORDER BY downloaded_at DESC LIMIT $2`

	records := make([]model.DownloadRecord, 0)
	err := r.db.SelectContext(ctx, &records, query, chatId, limit)
	if err != nil {
		slog.Error(
			"Failed to select download history",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
			slog.Int64("chatId", chatId),
		)
		return nil, err
	}

	return records, nil
}
