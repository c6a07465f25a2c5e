package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"bookshelf_tgbot/internal/converter/telebotConverter"
	"bookshelf_tgbot/internal/model"
	"bookshelf_tgbot/internal/model/tg/tgCallback"
	"bookshelf_tgbot/internal/service"
	"bookshelf_tgbot/internal/service/bookService"
	"bookshelf_tgbot/utils"

	tele "gopkg.in/telebot.v4"
)

// renderHome — главный экран. Синк профиля уходит в фон, как и в любом
// авторизованном шелле.
func (ctrl *Controller) renderHome(ctx context.Context, c tele.Context, chatSession model.Session) error {
	op := "Controller.renderHome"
	rqID := utils.GetRequestIDFromCtx(ctx)

	go func() {
		if _, err := ctrl.userService.SyncUser(context.WithoutCancel(ctx), c.Chat().ID); err != nil {
			slog.Warn("background user sync failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		}
	}()

	crumbs := []model.Breadcrumb{homeCrumb()}
	ctrl.saveBreadcrumbs(ctx, c.Chat().ID, &chatSession, crumbs...)

	booksPage, err := ctrl.bookService.GetBooksPage(ctx, chatSession.Token, chatSession.UserID(), 0)
	if err != nil {
		slog.Error("got error from bookService.GetBooksPage", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.handleServiceErr(c, err)
	}

	return c.Send(telebotConverter.HomeScreen(chatSession.User, booksPage, crumbs))
}

func (ctrl *Controller) Home(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	return ctrl.renderHome(ctx, c, chatSession)
}

func (ctrl *Controller) BooksScreen(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	return ctrl.renderBooksPage(ctx, c, chatSession, 0, false)
}

func (ctrl *Controller) renderBooksPage(ctx context.Context, c tele.Context, chatSession model.Session, page int, edit bool) error {
	op := "Controller.renderBooksPage"
	rqID := utils.GetRequestIDFromCtx(ctx)

	crumbs := []model.Breadcrumb{homeCrumb(), booksCrumb()}
	ctrl.saveBreadcrumbs(ctx, c.Chat().ID, &chatSession, crumbs...)

	booksPage, err := ctrl.bookService.GetBooksPage(ctx, chatSession.Token, chatSession.UserID(), page)
	if err != nil {
		if errors.Is(err, bookService.ErrIncorrectPage) {
			return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
		}
		slog.Error("got error from bookService.GetBooksPage", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.handleServiceErr(c, err)
	}

	text, markup := telebotConverter.BooksPage(booksPage, ctrl.cfg.BooksPerPage, crumbs)
	if edit {
		return c.Edit(text, markup)
	}
	return c.Send(text, markup)
}

func (ctrl *Controller) ProcessToBooksPage(c tele.Context) error {
	op := "Controller.ProcessToBooksPage"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	pageStr := strings.TrimPrefix(c.Callback().Data, fmt.Sprintf("\f%s", tgCallback.ToBooksPage))
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		slog.Error(
			"error while converting page from callback",
			slog.String("rqID", rqID),
			slog.String("op", op),
			slog.String("err", err.Error()),
			slog.String("pageStr", pageStr),
		)
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return ctrl.renderBooksPage(ctx, c, chatSession, page, true)
}

func (ctrl *Controller) BackToBooksPage(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	pageStr := strings.TrimPrefix(c.Callback().Data, fmt.Sprintf("\f%s", tgCallback.BackToBooksPage))
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		page = 0
	}

	return ctrl.renderBooksPage(ctx, c, chatSession, page, true)
}

func (ctrl *Controller) ProcessToBookDetails(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	bookID := strings.TrimPrefix(c.Callback().Data, fmt.Sprintf("\f%s", tgCallback.ToBookDetails))

	return ctrl.renderBookDetails(ctx, c, chatSession, bookID, true)
}

func (ctrl *Controller) renderBookDetails(ctx context.Context, c tele.Context, chatSession model.Session, bookID string, edit bool) error {
	op := "Controller.renderBookDetails"
	rqID := utils.GetRequestIDFromCtx(ctx)

	book, err := ctrl.bookService.GetBook(ctx, chatSession.Token, chatSession.UserID(), bookID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return ctrl.sendAutoDeleteMsg(c, bookNotFoundMsg)
		}
		slog.Error("got error from bookService.GetBook", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.handleServiceErr(c, err)
	}

	crumbs := []model.Breadcrumb{homeCrumb(), booksCrumb(), {Label: book.Title, Path: "/books"}}
	ctrl.saveBreadcrumbs(ctx, c.Chat().ID, &chatSession, crumbs...)

	isOwner := chatSession.User != nil && book.Author.ID == chatSession.User.ID

	text, markup := telebotConverter.BookDetails(book, isOwner, 0, crumbs)
	if edit {
		return c.Edit(text, markup)
	}
	return c.Send(text, markup)
}

// --- создание книги: пошаговая форма ---

func (ctrl *Controller) InitCreateBook(c tele.Context) error {
	op := "Controller.InitCreateBook"
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	chatSession.Action = model.ExpectingBookTitle
	chatSession.BookDraft = &model.BookDraft{}
	chatSession.EditingBookID = ""
	chatSession.Breadcrumbs = []model.Breadcrumb{homeCrumb(), booksCrumb(), {Label: "Создание", Path: "/books/create"}}

	if err := ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		slog.Error("got error from session.SetSession", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(telebotConverter.Breadcrumbs(chatSession.Breadcrumbs) + enterBookTitleMsg)
}

func (ctrl *Controller) ProcessBookTitle(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	if chatSession.BookDraft == nil {
		chatSession.BookDraft = &model.BookDraft{}
	}

	chatSession.BookDraft.Title = strings.TrimSpace(c.Message().Text)
	chatSession.Action = model.ExpectingBookGenre
	if err := ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(enterBookGenreMsg)
}

func (ctrl *Controller) ProcessBookGenre(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	if chatSession.BookDraft == nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	chatSession.BookDraft.Genre = strings.TrimSpace(c.Message().Text)
	chatSession.Action = model.ExpectingBookDescription
	if err := ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(enterBookDescrMsg)
}

func (ctrl *Controller) ProcessBookDescription(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	if chatSession.BookDraft == nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	chatSession.BookDraft.Description = strings.TrimSpace(c.Message().Text)
	chatSession.Action = model.DefaultAction
	if err := ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	// AI-ассисты по желанию, до загрузки файлов
	return c.Send(telebotConverter.DescriptionAssist(chatSession.BookDraft.Description))
}

func (ctrl *Controller) FixDraftGrammar(c tele.Context) error {
	op := "Controller.FixDraftGrammar"
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	if chatSession.BookDraft == nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	corrected, err := ctrl.bookService.FixGrammar(ctx, chatSession.Token, chatSession.BookDraft.Description)
	if err != nil {
		slog.Error("got error from bookService.FixGrammar", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.handleServiceErr(c, err)
	}

	chatSession.BookDraft.Description = corrected
	if err = ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Edit(telebotConverter.DescriptionAssist(corrected))
}

func (ctrl *Controller) InitImproveDraft(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	if chatSession.BookDraft == nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	chatSession.Action = model.ExpectingImprovePrompt
	chatSession.EditingBookID = ""
	if err := ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(enterImprovePromptMsg)
}

func (ctrl *Controller) ProcessImprovePrompt(c tele.Context) error {
	op := "Controller.ProcessImprovePrompt"
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	prompt := strings.TrimSpace(c.Message().Text)
	if prompt == "-" {
		prompt = ""
	}

	// промпт улучшения относится либо к черновику, либо к существующей книге
	if chatSession.EditingBookID != "" {
		return ctrl.improveExistingBook(ctx, c, chatSession, prompt)
	}

	if chatSession.BookDraft == nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	improved, err := ctrl.bookService.ImproveDescription(ctx, chatSession.Token, chatSession.BookDraft.Description, prompt)
	if err != nil {
		slog.Error("got error from bookService.ImproveDescription", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.handleServiceErr(c, err)
	}

	chatSession.BookDraft.Description = improved
	chatSession.Action = model.DefaultAction
	if err = ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(telebotConverter.DescriptionAssist(improved))
}

func (ctrl *Controller) KeepDescription(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	if chatSession.BookDraft == nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	chatSession.Action = model.ExpectingBookCover
	if err := ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(sendBookCoverMsg)
}

// ProcessBookCover валидирует и сохраняет обложку. Проверка типа и размера
// идет до скачивания, невалидный файл не порождает ни одного запроса.
func (ctrl *Controller) ProcessBookCover(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	if chatSession.BookDraft == nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	ref, errMsg := ctrl.acceptUpload(ctx, c, coverUpload)
	if errMsg != "" {
		return c.Send(errMsg)
	}

	chatSession.BookDraft.CoverImage = ref
	chatSession.Action = model.ExpectingBookFile
	if err := ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(sendBookFileMsg)
}

// ProcessBookFile принимает файл книги и отправляет форму на платформу.
func (ctrl *Controller) ProcessBookFile(c tele.Context) error {
	op := "Controller.ProcessBookFile"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	if chatSession.BookDraft == nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	ref, errMsg := ctrl.acceptUpload(ctx, c, bookFileUpload)
	if errMsg != "" {
		return c.Send(errMsg)
	}

	chatSession.BookDraft.File = ref
	draft := *chatSession.BookDraft

	// сбрасываем состояние формы до запроса, повторная отправка не пройдет
	chatSession.Action = model.DefaultAction
	chatSession.BookDraft = nil
	if err := ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	_, err := ctrl.bookService.CreateBook(ctx, chatSession.Token, chatSession.UserID(), draft)
	if err != nil {
		var validationErr *bookService.ValidationError
		if errors.As(err, &validationErr) {
			// форма остается открытой для исправления
			chatSession.BookDraft = &draft
			chatSession.Action = actionForField(validationErr.Field)
			_ = ctrl.session.SetSession(ctx, c.Chat().ID, chatSession)
			return c.Send(validationErr.Message)
		}

		slog.Error("got error from bookService.CreateBook", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.handleServiceErr(c, err)
	}

	_ = ctrl.sendAutoDeleteMsg(c, bookCreatedMsg)

	// аналог редиректа на список книг
	return ctrl.renderBooksPage(ctx, c, chatSession, 0, false)
}

func actionForField(field string) model.Action {
	switch field {
	case "title":
		return model.ExpectingBookTitle
	case "genre":
		return model.ExpectingBookGenre
	case "description":
		return model.ExpectingBookDescription
	case "coverImage":
		return model.ExpectingBookCover
	default:
		return model.ExpectingBookFile
	}
}

// --- правка и удаление ---

func (ctrl *Controller) initEditField(c tele.Context, prefix string, action model.Action, prompt string) error {
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	bookID := strings.TrimPrefix(c.Callback().Data, fmt.Sprintf("\f%s", prefix))

	chatSession.Action = action
	chatSession.EditingBookID = bookID
	if err := ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(prompt)
}

func (ctrl *Controller) InitEditTitle(c tele.Context) error {
	return ctrl.initEditField(c, tgCallback.EditTitle, model.ExpectingEditTitle, enterBookTitleMsg)
}

func (ctrl *Controller) InitEditGenre(c tele.Context) error {
	return ctrl.initEditField(c, tgCallback.EditGenre, model.ExpectingEditGenre, enterBookGenreMsg)
}

func (ctrl *Controller) InitEditDescription(c tele.Context) error {
	return ctrl.initEditField(c, tgCallback.EditDescr, model.ExpectingEditDescription, enterBookDescrMsg)
}

func (ctrl *Controller) InitImproveBook(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	chatSession.Action = model.ExpectingImprovePrompt
	chatSession.EditingBookID = strings.TrimPrefix(c.Callback().Data, fmt.Sprintf("\f%s", tgCallback.ImproveBook))
	chatSession.BookDraft = nil
	if err := ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(enterImprovePromptMsg)
}

func (ctrl *Controller) processEditField(c tele.Context, apply func(book model.Book, value string) model.BookDraft) error {
	op := "Controller.processEditField"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	if chatSession.EditingBookID == "" {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	book, err := ctrl.bookService.GetBook(ctx, chatSession.Token, chatSession.UserID(), chatSession.EditingBookID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return ctrl.sendAutoDeleteMsg(c, bookNotFoundMsg)
		}
		slog.Error("got error from bookService.GetBook", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.handleServiceErr(c, err)
	}

	draft := apply(book, strings.TrimSpace(c.Message().Text))

	bookID := chatSession.EditingBookID
	chatSession.Action = model.DefaultAction
	chatSession.EditingBookID = ""
	if err = ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	if _, err = ctrl.bookService.EditBook(ctx, chatSession.Token, chatSession.UserID(), bookID, draft); err != nil {
		var validationErr *bookService.ValidationError
		if errors.As(err, &validationErr) {
			return c.Send(validationErr.Message)
		}

		slog.Error("got error from bookService.EditBook", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.handleServiceErr(c, err)
	}

	_ = ctrl.sendAutoDeleteMsg(c, bookUpdatedMsg)

	return ctrl.renderBookDetails(ctx, c, chatSession, bookID, false)
}

func (ctrl *Controller) ProcessEditTitle(c tele.Context) error {
	return ctrl.processEditField(c, func(book model.Book, value string) model.BookDraft {
		return model.BookDraft{Title: value, Genre: book.Genre, Description: book.Description}
	})
}

func (ctrl *Controller) ProcessEditGenre(c tele.Context) error {
	return ctrl.processEditField(c, func(book model.Book, value string) model.BookDraft {
		return model.BookDraft{Title: book.Title, Genre: value, Description: book.Description}
	})
}

func (ctrl *Controller) ProcessEditDescription(c tele.Context) error {
	return ctrl.processEditField(c, func(book model.Book, value string) model.BookDraft {
		return model.BookDraft{Title: book.Title, Genre: book.Genre, Description: value}
	})
}

func (ctrl *Controller) FixBookGrammar(c tele.Context) error {
	op := "Controller.FixBookGrammar"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	bookID := strings.TrimPrefix(c.Callback().Data, fmt.Sprintf("\f%s", tgCallback.FixBookText))

	book, err := ctrl.bookService.GetBook(ctx, chatSession.Token, chatSession.UserID(), bookID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return ctrl.sendAutoDeleteMsg(c, bookNotFoundMsg)
		}
		return ctrl.handleServiceErr(c, err)
	}

	corrected, err := ctrl.bookService.FixGrammar(ctx, chatSession.Token, book.Description)
	if err != nil {
		slog.Error("got error from bookService.FixGrammar", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.handleServiceErr(c, err)
	}

	draft := model.BookDraft{Title: book.Title, Genre: book.Genre, Description: corrected}
	if _, err = ctrl.bookService.EditBook(ctx, chatSession.Token, chatSession.UserID(), bookID, draft); err != nil {
		slog.Error("got error from bookService.EditBook", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.handleServiceErr(c, err)
	}

	_ = ctrl.sendAutoDeleteMsg(c, bookUpdatedMsg)

	return ctrl.renderBookDetails(ctx, c, chatSession, bookID, true)
}

func (ctrl *Controller) improveExistingBook(ctx context.Context, c tele.Context, chatSession model.Session, prompt string) error {
	op := "Controller.improveExistingBook"
	rqID := utils.GetRequestIDFromCtx(ctx)

	bookID := chatSession.EditingBookID

	book, err := ctrl.bookService.GetBook(ctx, chatSession.Token, chatSession.UserID(), bookID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return ctrl.sendAutoDeleteMsg(c, bookNotFoundMsg)
		}
		return ctrl.handleServiceErr(c, err)
	}

	improved, err := ctrl.bookService.ImproveDescription(ctx, chatSession.Token, book.Description, prompt)
	if err != nil {
		slog.Error("got error from bookService.ImproveDescription", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.handleServiceErr(c, err)
	}

	chatSession.Action = model.DefaultAction
	chatSession.EditingBookID = ""
	if err = ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	draft := model.BookDraft{Title: book.Title, Genre: book.Genre, Description: improved}
	if _, err = ctrl.bookService.EditBook(ctx, chatSession.Token, chatSession.UserID(), bookID, draft); err != nil {
		slog.Error("got error from bookService.EditBook", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.handleServiceErr(c, err)
	}

	_ = ctrl.sendAutoDeleteMsg(c, bookUpdatedMsg)

	return ctrl.renderBookDetails(ctx, c, chatSession, bookID, false)
}

func (ctrl *Controller) InitDeleteBook(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	bookID := strings.TrimPrefix(c.Callback().Data, fmt.Sprintf("\f%s", tgCallback.DeleteBook))

	book, err := ctrl.bookService.GetBook(ctx, chatSession.Token, chatSession.UserID(), bookID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return ctrl.sendAutoDeleteMsg(c, bookNotFoundMsg)
		}
		return ctrl.handleServiceErr(c, err)
	}

	return c.Edit(telebotConverter.DeleteConfirm(book))
}

// ConfirmDeleteBook удаляет книгу. Кэш списка инвалидируется только после
// успешного ответа платформы, до него список не меняется.
func (ctrl *Controller) ConfirmDeleteBook(c tele.Context) error {
	op := "Controller.ConfirmDeleteBook"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	bookID := strings.TrimPrefix(c.Callback().Data, fmt.Sprintf("\f%s", tgCallback.ConfirmDelete))

	if err := ctrl.bookService.DeleteBook(ctx, chatSession.Token, chatSession.UserID(), bookID); err != nil {
		slog.Error("got error from bookService.DeleteBook", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.handleServiceErr(c, err)
	}

	_ = ctrl.sendAutoDeleteMsg(c, bookDeletedMsg)

	return ctrl.renderBooksPage(ctx, c, chatSession, 0, true)
}
