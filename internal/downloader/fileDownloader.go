package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"path"
	"time"

	"bookshelf_tgbot/utils"
)

// maxAttempts — единственное место в клиенте с ретраями: загрузка бинарника
// книги повторяется на транзиентных ошибках, все остальные запросы — нет.
const maxAttempts = 3

var ErrEmptyURL = errors.New("no file URL provided")

type FileDownloader struct {
	client *http.Client
}

func NewFileDownloader() *FileDownloader {
	return &FileDownloader{client: &http.Client{}}
}

func (f *FileDownloader) Download(ctx context.Context, fileUrl string) (fileBytes []byte, filename string, err error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "FileDownloader.Download"

	if fileUrl == "" {
		return nil, "", ErrEmptyURL
	}

	slog.Info("Download start", slog.String("rqID", rqID), slog.String("op", op), slog.String("url", fileUrl))

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		fileBytes, filename, err = f.download(ctx, fileUrl)
		if err == nil {
			slog.Info("Download finished", slog.String("rqID", rqID), slog.String("op", op), slog.String("url", fileUrl))
			return fileBytes, filename, nil
		}

		if ctx.Err() != nil {
			return nil, "", ctx.Err()
		}

		slog.Warn(
			"download attempt failed",
			slog.String("rqID", rqID),
			slog.String("op", op),
			slog.Int("attempt", attempt),
			slog.String("err", err.Error()),
		)

		if attempt < maxAttempts {
			select {
			case <-ctx.Done():
				return nil, "", ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}
	}

	return nil, "", err
}

func (f *FileDownloader) download(ctx context.Context, fileUrl string) (fileBytes []byte, filename string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileUrl, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("response status not ok: %d", resp.StatusCode)
	}

	filename = filenameFromResponse(resp, fileUrl)
	if filename == "" {
		return nil, "", errors.New("filename is empty")
	}

	fileBytes, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read body err: %w", err)
	}

	return fileBytes, filename, nil
}

// filenameFromResponse берет имя из Content-Disposition, иначе из пути URL.
func filenameFromResponse(resp *http.Response, fileUrl string) string {
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil && params["filename"] != "" {
			return params["filename"]
		}
	}

	u, err := url.Parse(fileUrl)
	if err != nil {
		return ""
	}

	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return ""
	}
	return name
}
