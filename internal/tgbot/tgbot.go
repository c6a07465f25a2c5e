package tgbot

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"bookshelf_tgbot/config"
	"bookshelf_tgbot/data/session"
	"bookshelf_tgbot/internal/model"
	"bookshelf_tgbot/internal/model/tg/tgCallback"
	"bookshelf_tgbot/internal/transport/telegram"
	customMW "bookshelf_tgbot/internal/transport/telegram/middleware"
	"bookshelf_tgbot/utils"

	tele "gopkg.in/telebot.v4"
	"gopkg.in/telebot.v4/middleware"
)

type Session interface {
	GetSession(ctx context.Context, chatID int64) (model.Session, error)
	SetSession(ctx context.Context, chatID int64, session model.Session) error
}

type TGBot struct {
	bot     *tele.Bot
	ctrl    *telegram.Controller
	session Session
}

func New(cfg *config.Config, ctrl *telegram.Controller, session Session) *TGBot {
	settings := tele.Settings{
		Token:  cfg.Telegram.Token,
		Poller: &tele.LongPoller{Timeout: cfg.Telegram.UpdTimeout},
	}

	b, err := tele.NewBot(settings)
	if err != nil {
		slog.Error("error while tele.NewBot", slog.String("err", err.Error()))
		panic(err)
	}

	return &TGBot{bot: b, ctrl: ctrl, session: session}
}

func (b *TGBot) Start() {
	b.bot.Use(middleware.Recover(), customMW.Logger())

	b.setupRoutes()

	go b.bot.Start()
	slog.Info("tgbot started!")
}

func (b *TGBot) Stop() {
	slog.Info("start stopping tgbot")
	b.bot.Stop()
	slog.Info("tgbot stopped")
}

func (b *TGBot) setupRoutes() {
	// commands
	b.bot.Handle("/start", b.ctrl.Start)
	b.bot.Handle("/help", b.ctrl.Help)
	b.bot.Handle("/login", b.ctrl.InitLogin)
	b.bot.Handle("/register", b.ctrl.InitRegister)
	b.bot.Handle("/logout", b.ctrl.Logout)
	b.bot.Handle("/home", b.ctrl.Home)
	b.bot.Handle("/books", b.ctrl.BooksScreen)
	b.bot.Handle("/newbook", b.ctrl.InitCreateBook)
	b.bot.Handle("/read", b.ctrl.ReadCommand)
	b.bot.Handle("/profile", b.ctrl.ProfileScreen)
	b.bot.Handle("/email", b.ctrl.EmailCommand)
	b.bot.Handle("/history", b.ctrl.History)

	// text
	b.bot.Handle(tele.OnText, func(c tele.Context) error {
		// получение сессии и выбор метода контроллера на основе шага диалога
		chatSession, err := b.sessionForUpdate(c)
		if err != nil {
			return c.Send("что-то пошло не так...")
		}

		switch chatSession.Action {
		case model.ExpectingLoginEmail:
			return b.ctrl.ProcessLoginEmail(c)
		case model.ExpectingLoginPassword:
			return b.ctrl.ProcessLoginPassword(c)
		case model.ExpectingRegisterName:
			return b.ctrl.ProcessRegisterName(c)
		case model.ExpectingRegisterEmail:
			return b.ctrl.ProcessRegisterEmail(c)
		case model.ExpectingRegisterPassword:
			return b.ctrl.ProcessRegisterPassword(c)
		case model.ExpectingBookTitle:
			return b.ctrl.ProcessBookTitle(c)
		case model.ExpectingBookGenre:
			return b.ctrl.ProcessBookGenre(c)
		case model.ExpectingBookDescription:
			return b.ctrl.ProcessBookDescription(c)
		case model.ExpectingEditTitle:
			return b.ctrl.ProcessEditTitle(c)
		case model.ExpectingEditGenre:
			return b.ctrl.ProcessEditGenre(c)
		case model.ExpectingEditDescription:
			return b.ctrl.ProcessEditDescription(c)
		case model.ExpectingImprovePrompt:
			return b.ctrl.ProcessImprovePrompt(c)
		case model.ExpectingProfileName:
			return b.ctrl.ProcessProfileName(c)
		case model.ExpectingProfileBio:
			return b.ctrl.ProcessProfileBio(c)
		case model.ExpectingDeviceEmail:
			return b.ctrl.ProcessDeviceEmail(c)
		default:
			return b.ctrl.Help(c)
		}
	})

	// файлы принимаются только внутри форм
	b.bot.Handle(tele.OnDocument, b.handleUpload)
	b.bot.Handle(tele.OnPhoto, b.handleUpload)

	// callbacks
	b.bot.Handle(tele.OnCallback, func(c tele.Context) error {
		callbackBtnText := strings.TrimPrefix(c.Callback().Data, "\f")

		switch {
		case callbackBtnText == tgCallback.NewBook:
			return b.ctrl.InitCreateBook(c)
		case callbackBtnText == tgCallback.CancelDialog:
			return b.ctrl.CancelDialog(c)
		case callbackBtnText == tgCallback.Logout:
			return b.ctrl.Logout(c)
		case callbackBtnText == tgCallback.LinkEmail:
			return b.ctrl.InitLinkEmail(c)
		case callbackBtnText == tgCallback.DeleteEmail:
			return b.ctrl.UnlinkEmail(c)
		case callbackBtnText == tgCallback.EditName:
			return b.ctrl.InitEditName(c)
		case callbackBtnText == tgCallback.EditBio:
			return b.ctrl.InitEditBio(c)
		case callbackBtnText == tgCallback.EditPhoto:
			return b.ctrl.InitEditPhoto(c)
		case callbackBtnText == tgCallback.KeepDescription:
			return b.ctrl.KeepDescription(c)
		case callbackBtnText == tgCallback.FixGrammar:
			return b.ctrl.FixDraftGrammar(c)
		case callbackBtnText == tgCallback.ImproveDescr:
			return b.ctrl.InitImproveDraft(c)
		case strings.HasPrefix(callbackBtnText, tgCallback.BackToBooksPage):
			return b.ctrl.BackToBooksPage(c)
		case strings.HasPrefix(callbackBtnText, tgCallback.ToBooksPage):
			return b.ctrl.ProcessToBooksPage(c)
		case strings.HasPrefix(callbackBtnText, tgCallback.ToBookDetails):
			return b.ctrl.ProcessToBookDetails(c)
		case strings.HasPrefix(callbackBtnText, tgCallback.ReadBook):
			return b.ctrl.ProcessReadBook(c)
		case strings.HasPrefix(callbackBtnText, tgCallback.DownloadBook):
			return b.ctrl.ProcessDownloadBook(c)
		case strings.HasPrefix(callbackBtnText, tgCallback.SendToDevice):
			return b.ctrl.ProcessSendToDevice(c)
		case strings.HasPrefix(callbackBtnText, tgCallback.DeleteBook):
			return b.ctrl.InitDeleteBook(c)
		case strings.HasPrefix(callbackBtnText, tgCallback.ConfirmDelete):
			return b.ctrl.ConfirmDeleteBook(c)
		case strings.HasPrefix(callbackBtnText, tgCallback.EditTitle):
			return b.ctrl.InitEditTitle(c)
		case strings.HasPrefix(callbackBtnText, tgCallback.EditGenre):
			return b.ctrl.InitEditGenre(c)
		case strings.HasPrefix(callbackBtnText, tgCallback.EditDescr):
			return b.ctrl.InitEditDescription(c)
		case strings.HasPrefix(callbackBtnText, tgCallback.ImproveBook):
			return b.ctrl.InitImproveBook(c)
		case strings.HasPrefix(callbackBtnText, tgCallback.FixBookText):
			return b.ctrl.FixBookGrammar(c)
		case callbackBtnText == tgCallback.PageNumber:
			return nil
		default:
			return c.Send("callback не опознан")
		}
	})
}

func (b *TGBot) handleUpload(c tele.Context) error {
	chatSession, err := b.sessionForUpdate(c)
	if err != nil {
		return c.Send("что-то пошло не так...")
	}

	switch chatSession.Action {
	case model.ExpectingBookCover:
		return b.ctrl.ProcessBookCover(c)
	case model.ExpectingBookFile:
		return b.ctrl.ProcessBookFile(c)
	case model.ExpectingProfilePhoto:
		return b.ctrl.ProcessProfilePhoto(c)
	default:
		return b.ctrl.Help(c)
	}
}

func (b *TGBot) sessionForUpdate(c tele.Context) (model.Session, error) {
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	chatSession, err := b.session.GetSession(ctx, c.Chat().ID)
	if err != nil && !errors.Is(err, session.ErrNotFound) {
		slog.Error("got error from session.GetSession", slog.String("rqID", rqID), slog.String("err", err.Error()))
		return model.Session{}, err
	}

	c.Set("session", chatSession)

	return chatSession, nil
}
