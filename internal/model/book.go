package model

import "time"

type Author struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type Book struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	Author      Author `json:"author"`
	CoverImage  string `json:"coverImage"`
	File        string `json:"file"`
	CreatedAt   string `json:"createdAt"`
}

type BooksPage struct {
	Books       []Book
	Page        int
	HasNextPage bool
}

type DownloadRecord struct {
	ChatID       int64     `db:"chat_id"`
	BookID       string    `db:"book_id"`
	Title        string    `db:"title"`
	DownloadedAt time.Time `db:"downloaded_at"`
}
