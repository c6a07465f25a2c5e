package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"bookshelf_tgbot/internal/converter/telebotConverter"
	"bookshelf_tgbot/internal/model"
	"bookshelf_tgbot/internal/model/tg/tgCallback"
	"bookshelf_tgbot/internal/service"
	"bookshelf_tgbot/internal/service/bookService"
	"bookshelf_tgbot/utils"

	tele "gopkg.in/telebot.v4"
)

const recentDownloadsLimit = 10

// ReadCommand обрабатывает /read <id>. Без аргумента отправляем к списку.
func (ctrl *Controller) ReadCommand(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	bookID := strings.TrimSpace(c.Message().Payload)
	if bookID == "" {
		return c.Send(chooseBookToReadMsg)
	}

	return ctrl.deliverBook(ctx, c, chatSession, bookID)
}

func (ctrl *Controller) ProcessReadBook(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	bookID := strings.TrimPrefix(c.Callback().Data, fmt.Sprintf("\f%s", tgCallback.ReadBook))

	return ctrl.deliverBook(ctx, c, chatSession, bookID)
}

func (ctrl *Controller) ProcessDownloadBook(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	bookID := strings.TrimPrefix(c.Callback().Data, fmt.Sprintf("\f%s", tgCallback.DownloadBook))

	return ctrl.deliverBook(ctx, c, chatSession, bookID)
}

// deliverBook скачивает файл книги (или берет его из блоб-кэша) и отправляет
// документом в чат.
func (ctrl *Controller) deliverBook(ctx context.Context, c tele.Context, chatSession model.Session, bookID string) error {
	op := "Controller.deliverBook"
	rqID := utils.GetRequestIDFromCtx(ctx)

	book, err := ctrl.bookService.GetBook(ctx, chatSession.Token, chatSession.UserID(), bookID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return ctrl.sendAutoDeleteMsg(c, bookNotFoundMsg)
		}
		slog.Error("got error from bookService.GetBook", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.handleServiceErr(c, err)
	}

	_ = ctrl.sendAutoDeleteMsg(c, startBookDownloadMsg)

	filePath, err := ctrl.bookService.GetBookFile(ctx, book.File)
	if err != nil {
		slog.Error("got error from bookService.GetBookFile", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return c.Send(blobLoadFailedMsg)
	}

	doc := &tele.Document{
		File:     tele.FromDisk(filePath),
		FileName: book.Title,
		Caption:  book.Title,
	}

	if err = c.Send(doc); err != nil {
		slog.Error("failed to send book document", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return c.Send(blobLoadFailedMsg)
	}

	ctrl.bookService.RecordDownload(ctx, c.Chat().ID, book)

	return nil
}

func (ctrl *Controller) ProcessSendToDevice(c tele.Context) error {
	op := "Controller.ProcessSendToDevice"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	bookID := strings.TrimPrefix(c.Callback().Data, fmt.Sprintf("\f%s", tgCallback.SendToDevice))

	book, err := ctrl.bookService.GetBook(ctx, chatSession.Token, chatSession.UserID(), bookID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return ctrl.sendAutoDeleteMsg(c, bookNotFoundMsg)
		}
		return ctrl.handleServiceErr(c, err)
	}

	if err = ctrl.bookService.SendToDevice(ctx, c.Chat().ID, book); err != nil {
		if errors.Is(err, bookService.ErrEmailNotLinked) {
			return c.Send(emailNotLinkedMsg)
		}
		slog.Error("got error from bookService.SendToDevice", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.handleServiceErr(c, err)
	}

	return c.Send(bookSentToDeviceMsg)
}

func (ctrl *Controller) History(c tele.Context) error {
	op := "Controller.History"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	records, err := ctrl.bookService.GetRecentDownloads(ctx, c.Chat().ID, recentDownloadsLimit)
	if err != nil {
		slog.Error("got error from bookService.GetRecentDownloads", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	crumbs := []model.Breadcrumb{homeCrumb(), {Label: "История", Path: "/history"}}
	ctrl.saveBreadcrumbs(ctx, c.Chat().ID, &chatSession, crumbs...)

	return c.Send(telebotConverter.HistoryScreen(records, crumbs))
}
