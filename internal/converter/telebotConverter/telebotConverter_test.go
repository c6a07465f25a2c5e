package telebotConverter

import (
	"testing"
	"time"

	"bookshelf_tgbot/internal/model"

	"github.com/stretchr/testify/assert"
)

func crumbs() []model.Breadcrumb {
	return []model.Breadcrumb{
		{Label: "Главная", Path: "/"},
		{Label: "Книги", Path: "/books"},
	}
}

func TestBreadcrumbs(t *testing.T) {
	assert.Equal(t, "📍 Главная › Книги\n\n", Breadcrumbs(crumbs()))
	assert.Equal(t, "", Breadcrumbs(nil))
}

func TestBooksPage_Pagination(t *testing.T) {
	page := model.BooksPage{
		Books: []model.Book{
			{ID: "b1", Title: "title1", Author: model.Author{Name: "author1"}},
			{ID: "b2", Title: "title2", Author: model.Author{Name: "author2"}},
		},
		Page:        1,
		HasNextPage: true,
	}

	text, markup := BooksPage(page, 2, crumbs())

	assert.Contains(t, text, "3) title1")
	assert.Contains(t, text, "4) title2")

	rows := markup.InlineKeyboard
	lastBtns := rows[len(rows)-2]
	// назад, номер страницы, вперед
	assert.Len(t, lastBtns, 3)
	assert.Equal(t, "to_books_page:0", lastBtns[0].Unique)
	assert.Equal(t, "to_books_page:2", lastBtns[2].Unique)
}

func TestBooksPage_Empty(t *testing.T) {
	text, markup := BooksPage(model.BooksPage{}, 10, crumbs())

	assert.Contains(t, text, "/newbook")
	assert.Len(t, markup.InlineKeyboard, 1)
}

func TestBookDetails_OwnerButtons(t *testing.T) {
	book := model.Book{ID: "b1", Title: "title", Author: model.Author{ID: "u1", Name: "author"}, Genre: "genre"}

	_, ownerMarkup := BookDetails(book, true, 0, crumbs())
	_, readerMarkup := BookDetails(book, false, 0, crumbs())

	assert.Greater(t, len(ownerMarkup.InlineKeyboard), len(readerMarkup.InlineKeyboard))

	var ownerBtns []string
	for _, row := range ownerMarkup.InlineKeyboard {
		for _, btn := range row {
			ownerBtns = append(ownerBtns, btn.Unique)
		}
	}
	assert.Contains(t, ownerBtns, "delete_book:b1")
	assert.Contains(t, ownerBtns, "fix_book_description:b1")

	var readerBtns []string
	for _, row := range readerMarkup.InlineKeyboard {
		for _, btn := range row {
			readerBtns = append(readerBtns, btn.Unique)
		}
	}
	assert.NotContains(t, readerBtns, "delete_book:b1")
	assert.Contains(t, readerBtns, "read_book:b1")
	assert.Contains(t, readerBtns, "send_to_device:b1")
}

func TestDeleteConfirm(t *testing.T) {
	text, markup := DeleteConfirm(model.Book{ID: "b1", Title: "title"})

	assert.Contains(t, text, "title")
	assert.Equal(t, "confirm_delete:b1", markup.InlineKeyboard[0][0].Unique)
	assert.Equal(t, "to_book_details:b1", markup.InlineKeyboard[0][1].Unique)
}

func TestProfileScreen_EmailButton(t *testing.T) {
	user := model.User{Name: "name", Username: "username", Email: "test@gmail.com"}

	_, withEmail := ProfileScreen(user, "user@kindle.com", crumbs())
	_, withoutEmail := ProfileScreen(user, "", crumbs())

	assert.Equal(t, "delete_email", withEmail.InlineKeyboard[1][0].Unique)
	assert.Equal(t, "link_email", withoutEmail.InlineKeyboard[1][0].Unique)
}

func TestHistoryScreen(t *testing.T) {
	records := []model.DownloadRecord{
		{Title: "title1", DownloadedAt: time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)},
	}

	text := HistoryScreen(records, crumbs())

	assert.Contains(t, text, "title1")
	assert.Contains(t, text, "01.03.2025 12:30")

	assert.Contains(t, HistoryScreen(nil, crumbs()), "ничего не скачивали")
}
