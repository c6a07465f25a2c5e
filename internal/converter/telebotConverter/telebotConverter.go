package telebotConverter

import (
	"fmt"
	"strconv"
	"strings"

	"bookshelf_tgbot/internal/model"
	"bookshelf_tgbot/internal/model/tg/tgCallback"

	tele "gopkg.in/telebot.v4"
)

// Breadcrumbs рендерит хлебные крошки заголовком экрана.
func Breadcrumbs(items []model.Breadcrumb) string {
	if len(items) == 0 {
		return ""
	}

	labels := make([]string, 0, len(items))
	for _, item := range items {
		labels = append(labels, item.Label)
	}

	return "📍 " + strings.Join(labels, " › ") + "\n\n"
}

func LoginPrompt() string {
	return "Вы не авторизованы. Войдите командой /login или зарегистрируйтесь через /register."
}

func HomeScreen(user *model.User, page model.BooksPage, crumbs []model.Breadcrumb) (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}
	sb := strings.Builder{}

	sb.WriteString(Breadcrumbs(crumbs))

	if user != nil {
		sb.WriteString(fmt.Sprintf("Привет, %s!\n\n", user.Name))
	}

	if len(page.Books) == 0 {
		sb.WriteString("В библиотеке пока нет книг. Создайте первую: /newbook")
		markup.Inline(markup.Row(markup.Data("➕ новая книга", tgCallback.NewBook)))
		return sb.String(), markup
	}

	sb.WriteString("Последние книги платформы:\n\n")

	menuRows := make([]tele.Row, 0)
	for i, book := range page.Books {
		if i%5 == 0 {
			menuRows = append(menuRows, make(tele.Row, 0, 5))
		}

		sb.WriteString(fmt.Sprintf("%d) %s — %s\n", i+1, book.Title, book.Author.Name))
		btn := markup.Data(strconv.Itoa(i+1), tgCallback.ToBookDetails+book.ID)
		menuRows[len(menuRows)-1] = append(menuRows[len(menuRows)-1], btn)
	}

	menuRows = append(menuRows, markup.Row(
		markup.Data("📚 все книги", tgCallback.ToBooksPage+"0"),
		markup.Data("➕ новая книга", tgCallback.NewBook),
	))

	markup.Inline(menuRows...)

	return sb.String(), markup
}

func BooksPage(page model.BooksPage, booksPerPage int, crumbs []model.Breadcrumb) (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}
	sb := strings.Builder{}

	sb.WriteString(Breadcrumbs(crumbs))

	if len(page.Books) == 0 {
		sb.WriteString("Книг пока нет. Создайте первую: /newbook")
		markup.Inline(markup.Row(markup.Data("➕ новая книга", tgCallback.NewBook)))
		return sb.String(), markup
	}

	sb.WriteString("Книги платформы:\n\n")

	menuRows := make([]tele.Row, 0)

	for i, book := range page.Books {
		if i%5 == 0 {
			menuRows = append(menuRows, make(tele.Row, 0, 5))
		}

		ordinal := (page.Page * booksPerPage) + i + 1
		sb.WriteString(fmt.Sprintf("%d) %s — %s (%s)\n\n", ordinal, book.Title, book.Author.Name, book.Genre))
		btn := markup.Data(strconv.Itoa(ordinal), tgCallback.ToBookDetails+book.ID)
		menuRows[len(menuRows)-1] = append(menuRows[len(menuRows)-1], btn)
	}

	paginationBtns := make([]tele.Btn, 0)
	if page.Page > 0 {
		paginationBtns = append(paginationBtns, markup.Data("назад", tgCallback.ToBooksPage+strconv.Itoa(page.Page-1)))
	}

	if page.Page > 0 || page.HasNextPage {
		paginationBtns = append(paginationBtns, markup.Data(fmt.Sprintf("стр %d", page.Page+1), tgCallback.PageNumber))
	}

	if page.HasNextPage {
		paginationBtns = append(paginationBtns, markup.Data("вперед", tgCallback.ToBooksPage+strconv.Itoa(page.Page+1)))
	}

	menuRows = append(menuRows, markup.Row(paginationBtns...))
	menuRows = append(menuRows, markup.Row(markup.Data("➕ новая книга", tgCallback.NewBook)))

	markup.Inline(menuRows...)

	return sb.String(), markup
}

func BookDetails(book model.Book, isOwner bool, page int, crumbs []model.Breadcrumb) (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}
	sb := strings.Builder{}

	sb.WriteString(Breadcrumbs(crumbs))
	sb.WriteString(fmt.Sprintf("%s\n\n", book.Title))
	sb.WriteString(fmt.Sprintf("Автор: %s\nЖанр: %s\n\n", book.Author.Name, book.Genre))
	sb.WriteString(book.Description + "\n")

	menuRows := []tele.Row{
		markup.Row(
			markup.Data("📖 читать", tgCallback.ReadBook+book.ID),
			markup.Data("⬇ скачать", tgCallback.DownloadBook+book.ID),
		),
		markup.Row(markup.Data("📧 на устройство", tgCallback.SendToDevice+book.ID)),
	}

	if isOwner {
		menuRows = append(menuRows,
			markup.Row(
				markup.Data("✏ название", tgCallback.EditTitle+book.ID),
				markup.Data("✏ жанр", tgCallback.EditGenre+book.ID),
			),
			markup.Row(
				markup.Data("✏ описание", tgCallback.EditDescr+book.ID),
				markup.Data("🗑 удалить", tgCallback.DeleteBook+book.ID),
			),
			markup.Row(
				markup.Data("🪄 исправить грамматику", tgCallback.FixBookText+book.ID),
				markup.Data("🪄 улучшить описание", tgCallback.ImproveBook+book.ID),
			),
		)
	}

	menuRows = append(menuRows, markup.Row(markup.Data("назад", tgCallback.BackToBooksPage+strconv.Itoa(page))))

	markup.Inline(menuRows...)

	return sb.String(), markup
}

func DeleteConfirm(book model.Book) (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}
	markup.Inline(markup.Row(
		markup.Data("да, удалить", tgCallback.ConfirmDelete+book.ID),
		markup.Data("отмена", tgCallback.ToBookDetails+book.ID),
	))

	return fmt.Sprintf("Удалить книгу «%s»? Это действие необратимо.", book.Title), markup
}

func DescriptionAssist(description string) (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data("🪄 исправить грамматику", tgCallback.FixGrammar),
			markup.Data("🪄 улучшить", tgCallback.ImproveDescr),
		),
		markup.Row(markup.Data("оставить как есть", tgCallback.KeepDescription)),
		markup.Row(markup.Data("отменить создание", tgCallback.CancelDialog)),
	)

	return fmt.Sprintf("Текущее описание:\n\n%s", description), markup
}

func ProfileScreen(user model.User, deviceEmail string, crumbs []model.Breadcrumb) (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}
	sb := strings.Builder{}

	sb.WriteString(Breadcrumbs(crumbs))
	sb.WriteString(fmt.Sprintf("👤 %s (@%s)\n%s\n", user.Name, user.Username, user.Email))

	if user.Bio != "" {
		sb.WriteString("\n" + user.Bio + "\n")
	}

	if deviceEmail != "" {
		sb.WriteString(fmt.Sprintf("\nEmail устройства: %s\n", deviceEmail))
	} else {
		sb.WriteString("\nEmail устройства не привязан\n")
	}

	emailBtn := markup.Data("📧 привязать email", tgCallback.LinkEmail)
	if deviceEmail != "" {
		emailBtn = markup.Data("📧 отвязать email", tgCallback.DeleteEmail)
	}

	markup.Inline(
		markup.Row(
			markup.Data("✏ имя", tgCallback.EditName),
			markup.Data("✏ био", tgCallback.EditBio),
			markup.Data("✏ фото", tgCallback.EditPhoto),
		),
		markup.Row(emailBtn),
		markup.Row(markup.Data("🚪 выйти", tgCallback.Logout)),
	)

	return sb.String(), markup
}

func HistoryScreen(records []model.DownloadRecord, crumbs []model.Breadcrumb) string {
	sb := strings.Builder{}
	sb.WriteString(Breadcrumbs(crumbs))

	if len(records) == 0 {
		sb.WriteString("Вы еще ничего не скачивали.")
		return sb.String()
	}

	sb.WriteString("Последние скачивания:\n\n")
	for i, rec := range records {
		sb.WriteString(fmt.Sprintf("%d) %s — %s\n", i+1, rec.Title, rec.DownloadedAt.Format("02.01.2006 15:04")))
	}

	return sb.String()
}
