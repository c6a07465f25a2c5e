package telegram

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bookshelf_tgbot/config"
	"bookshelf_tgbot/data/session"
	"bookshelf_tgbot/internal/converter/telebotConverter"
	"bookshelf_tgbot/internal/model"
	"bookshelf_tgbot/internal/platform"
	"bookshelf_tgbot/utils"

	tele "gopkg.in/telebot.v4"
)

type UserService interface {
	Login(ctx context.Context, chatID int64, email, password string) (model.User, error)
	Register(ctx context.Context, chatID int64, name, email, password string) (model.User, error)
	SyncUser(ctx context.Context, chatID int64) (model.User, error)
	EditProfile(ctx context.Context, chatID int64, draft model.ProfileDraft) (model.User, error)
	Logout(ctx context.Context, chatID int64) error
	LinkDeviceEmail(ctx context.Context, chatID int64, email string) error
	UnlinkDeviceEmail(ctx context.Context, chatID int64) error
	DeviceEmail(ctx context.Context, chatID int64) (string, error)
}

type BookService interface {
	GetBooksPage(ctx context.Context, token string, userID string, page int) (model.BooksPage, error)
	GetBook(ctx context.Context, token string, userID string, bookID string) (model.Book, error)
	CreateBook(ctx context.Context, token string, userID string, draft model.BookDraft) (bookID string, err error)
	EditBook(ctx context.Context, token string, userID string, bookID string, draft model.BookDraft) (model.Book, error)
	DeleteBook(ctx context.Context, token string, userID string, bookID string) error
	GetBookFile(ctx context.Context, fileURL string) (string, error)
	SendToDevice(ctx context.Context, chatId int64, book model.Book) error
	RecordDownload(ctx context.Context, chatId int64, book model.Book)
	GetRecentDownloads(ctx context.Context, chatId int64, limit int) ([]model.DownloadRecord, error)
	FixGrammar(ctx context.Context, token string, text string) (string, error)
	ImproveDescription(ctx context.Context, token string, text string, prompt string) (string, error)
}

type Session interface {
	GetSession(ctx context.Context, chatID int64) (model.Session, error)
	SetSession(ctx context.Context, chatID int64, session model.Session) error
	DeleteSession(ctx context.Context, chatID int64) error
}

type Controller struct {
	cfg         *config.Config
	session     Session
	userService UserService
	bookService BookService
}

func NewController(cfg *config.Config, userService UserService, bookService BookService, sess Session) *Controller {
	return &Controller{
		cfg:         cfg,
		session:     sess,
		userService: userService,
		bookService: bookService,
	}
}

func (ctrl *Controller) getSessionFromTeleCtxOrStorage(ctx context.Context, c tele.Context) (model.Session, error) {
	op := "Controller.getSessionFromTeleCtxOrStorage"
	chatSession, ok := c.Get("session").(model.Session)
	if ok {
		return chatSession, nil
	}

	rqID := utils.GetRequestIDFromCtx(ctx)
	chatSession, err := ctrl.session.GetSession(ctx, c.Chat().ID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return model.Session{}, nil
		}
		slog.Error("got error from session.GetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.Session{}, err
	}
	return chatSession, nil
}

// requireAuth — гард авторизованной зоны: без токена пользователь получает
// приглашение войти (аналог редиректа на логин).
func (ctrl *Controller) requireAuth(ctx context.Context, c tele.Context) (model.Session, bool) {
	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		_ = ctrl.sendAutoDeleteMsg(c, internalErrMsg)
		return model.Session{}, false
	}

	if !chatSession.Authenticated() {
		_ = c.Send(telebotConverter.LoginPrompt())
		return model.Session{}, false
	}

	return chatSession, true
}

func (ctrl *Controller) sendAutoDeleteMsg(c tele.Context, text string) error {
	msg, err := c.Bot().Send(c.Chat(), text)
	if err != nil {
		return err
	}

	time.AfterFunc(5*time.Second, func() {
		_ = c.Bot().Delete(msg)
	})
	return nil
}

// saveBreadcrumbs полностью заменяет хлебные крошки текущего экрана.
func (ctrl *Controller) saveBreadcrumbs(ctx context.Context, chatID int64, chatSession *model.Session, crumbs ...model.Breadcrumb) {
	op := "Controller.saveBreadcrumbs"
	chatSession.Breadcrumbs = crumbs
	if err := ctrl.session.SetSession(ctx, chatID, *chatSession); err != nil {
		slog.Error("got error from session.SetSession", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
	}
}

// handleServiceErr переводит ошибку сервиса в сообщение чата. Ошибка никогда
// не уходит выше транспорта.
func (ctrl *Controller) handleServiceErr(c tele.Context, err error) error {
	if errors.Is(err, platform.ErrUnauthorized) {
		ctx := utils.CreateCtxWithRqID(c)
		_ = ctrl.session.DeleteSession(ctx, c.Chat().ID)
		return c.Send(telebotConverter.LoginPrompt())
	}

	var apiErr *platform.APIError
	if errors.As(err, &apiErr) {
		return ctrl.sendAutoDeleteMsg(c, apiErr.Message)
	}

	return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
}

func homeCrumb() model.Breadcrumb {
	return model.Breadcrumb{Label: "Главная", Path: "/"}
}

func booksCrumb() model.Breadcrumb {
	return model.Breadcrumb{Label: "Книги", Path: "/books"}
}
