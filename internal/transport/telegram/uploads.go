package telegram

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"

	"bookshelf_tgbot/internal/lib/files"
	"bookshelf_tgbot/internal/model"
	"bookshelf_tgbot/internal/service/bookService"
	"bookshelf_tgbot/utils"

	tele "gopkg.in/telebot.v4"
)

type uploadKind int

const (
	coverUpload uploadKind = iota
	bookFileUpload
)

// acceptUpload принимает файл из сообщения: сначала валидация типа и размера
// по метаданным Telegram, скачивание только после нее. Возвращает ссылку на
// сохраненный файл либо текст ошибки для пользователя.
func (ctrl *Controller) acceptUpload(ctx context.Context, c tele.Context, kind uploadKind) (*model.FileRef, string) {
	op := "Controller.acceptUpload"
	rqID := utils.GetRequestIDFromCtx(ctx)

	var (
		fileID string
		name   string
		mime   string
		size   int64
	)

	switch {
	case c.Message().Document != nil:
		doc := c.Message().Document
		fileID, name, mime, size = doc.FileID, doc.FileName, doc.MIME, doc.FileSize
	case c.Message().Photo != nil:
		photo := c.Message().Photo
		fileID, name, mime, size = photo.FileID, "photo.jpg", "image/jpeg", photo.FileSize
	default:
		if kind == coverUpload {
			return nil, sendBookCoverMsg
		}
		return nil, sendBookFileMsg
	}

	// Telegram часто отдает octet-stream, тип восстанавливаем по расширению
	if mime == "" || mime == "application/octet-stream" {
		switch strings.ToLower(filepath.Ext(name)) {
		case ".pdf":
			mime = "application/pdf"
		case ".epub":
			mime = "application/epub+zip"
		case ".jpg", ".jpeg":
			mime = "image/jpeg"
		case ".png":
			mime = "image/png"
		}
	}

	var checkErr error
	if kind == coverUpload {
		checkErr = bookService.CheckCoverUpload(mime, size)
	} else {
		checkErr = bookService.CheckBookFileUpload(mime, size)
	}
	if checkErr != nil {
		var validationErr *bookService.ValidationError
		if errors.As(checkErr, &validationErr) {
			return nil, validationErr.Message
		}
		return nil, internalErrMsg
	}

	rc, err := c.Bot().File(&tele.File{FileID: fileID})
	if err != nil {
		slog.Error("failed to fetch file from telegram", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, internalErrMsg
	}
	defer rc.Close()

	path, err := files.CreateFile(ctrl.cfg.FilesStorageDir, name, rc)
	if err != nil {
		slog.Error("failed to store uploaded file", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, internalErrMsg
	}

	return &model.FileRef{Name: name, Size: size, MIME: mime, Path: path}, ""
}

// CancelDialog сбрасывает любую начатую форму.
func (ctrl *Controller) CancelDialog(c tele.Context) error {
	op := "Controller.CancelDialog"
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	chatSession.Action = model.DefaultAction
	chatSession.BookDraft = nil
	chatSession.EditingBookID = ""
	if err = ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		slog.Error("got error from session.SetSession", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return ctrl.sendAutoDeleteMsg(c, createCancelledMsg)
}
