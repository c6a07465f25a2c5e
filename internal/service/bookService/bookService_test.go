package bookService

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"bookshelf_tgbot/config"
	"bookshelf_tgbot/data/cache"
	"bookshelf_tgbot/internal/model"
	"bookshelf_tgbot/internal/repository"
	"bookshelf_tgbot/internal/service"
	"bookshelf_tgbot/internal/service/bookService/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type bookServiceSuite struct {
	suite.Suite

	mockCtrl       *gomock.Controller
	service        *BookService
	cfg            *config.Config
	platform       *mocks.MockPlatformAPI
	cache          *mocks.MockCache
	repo           *mocks.MockRepository
	fileDownloader *mocks.MockFileDownloader
	mailer         *mocks.MockMailer
}

func TestBookServiceSuite(t *testing.T) {
	suite.Run(t, new(bookServiceSuite))
}

func (s *bookServiceSuite) SetupSuite() {
	s.mockCtrl = gomock.NewController(s.T())
}

func (s *bookServiceSuite) SetupTest() {
	s.cfg = &config.Config{
		BooksPerPage:    2,
		FilesStorageDir: s.T().TempDir(),
	}
	s.platform = mocks.NewMockPlatformAPI(s.mockCtrl)
	s.cache = mocks.NewMockCache(s.mockCtrl)
	s.repo = mocks.NewMockRepository(s.mockCtrl)
	s.fileDownloader = mocks.NewMockFileDownloader(s.mockCtrl)
	s.mailer = mocks.NewMockMailer(s.mockCtrl)

	s.service = New(s.cfg, s.platform, s.cache, s.repo, s.fileDownloader, s.mailer)
}

func validDraft() model.BookDraft {
	return model.BookDraft{
		Title:       "title",
		Genre:       "genre",
		Description: "description",
		CoverImage:  &model.FileRef{Name: "cover.png", Size: 1 << 20, MIME: "image/png"},
		File:        &model.FileRef{Name: "book.pdf", Size: 5 << 20, MIME: "application/pdf"},
	}
}

func someBooks() []model.Book {
	return []model.Book{
		{ID: "b1", Title: "title1", Author: model.Author{ID: "u1", Name: "author1"}},
		{ID: "b2", Title: "title2", Author: model.Author{ID: "u1", Name: "author1"}},
		{ID: "b3", Title: "title3", Author: model.Author{ID: "u2", Name: "author2"}},
	}
}

func (s *bookServiceSuite) Test_GetBooksPage_SuccessFromCache() {
	ctx := context.Background()
	books := someBooks()

	s.cache.EXPECT().
		GetBooks(ctx, "u1").
		Return(books, nil)

	res, err := s.service.GetBooksPage(ctx, "token", "u1", 0)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), books[:2], res.Books)
	assert.Equal(s.T(), 0, res.Page)
	assert.True(s.T(), res.HasNextPage)
}

func (s *bookServiceSuite) Test_GetBooksPage_SuccessNotFromCache() {
	ctx := context.Background()
	books := someBooks()

	s.cache.EXPECT().
		GetBooks(ctx, "u1").
		Return(nil, cache.ErrNotFound)

	s.platform.EXPECT().
		ListBooks(ctx, "token").
		Return(books, nil)

	s.cache.EXPECT().
		SetBooks(ctx, "u1", books).
		Return(nil)

	res, err := s.service.GetBooksPage(ctx, "token", "u1", 1)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), books[2:], res.Books)
	assert.False(s.T(), res.HasNextPage)
}

func (s *bookServiceSuite) Test_GetBooksPage_IncorrectPageErr() {
	ctx := context.Background()

	_, err := s.service.GetBooksPage(ctx, "token", "u1", -1)

	assert.Equal(s.T(), ErrIncorrectPage, err)
}

func (s *bookServiceSuite) Test_GetBooksPage_EmptyFirstPage() {
	ctx := context.Background()

	s.cache.EXPECT().
		GetBooks(ctx, "u1").
		Return([]model.Book{}, nil)

	res, err := s.service.GetBooksPage(ctx, "token", "u1", 0)

	assert.Nil(s.T(), err)
	assert.Empty(s.T(), res.Books)
	assert.False(s.T(), res.HasNextPage)
}

func (s *bookServiceSuite) Test_GetBook_Success() {
	ctx := context.Background()
	books := someBooks()

	s.cache.EXPECT().
		GetBooks(ctx, "u1").
		Return(books, nil)

	res, err := s.service.GetBook(ctx, "token", "u1", "b2")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), books[1], res)
}

func (s *bookServiceSuite) Test_GetBook_NotFoundErr() {
	ctx := context.Background()

	s.cache.EXPECT().
		GetBooks(ctx, "u1").
		Return(someBooks(), nil)

	_, err := s.service.GetBook(ctx, "token", "u1", "missing")

	assert.Equal(s.T(), service.ErrNotFound, err)
}

func (s *bookServiceSuite) Test_CreateBook_SuccessInvalidatesCacheOnce() {
	ctx := context.Background()
	draft := validDraft()

	s.platform.EXPECT().
		CreateBook(ctx, "token", draft).
		Return("b1", nil)

	s.cache.EXPECT().
		InvalidateBooks(ctx, "u1").
		Return(nil).
		Times(1)

	bookID, err := s.service.CreateBook(ctx, "token", "u1", draft)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "b1", bookID)
}

func (s *bookServiceSuite) Test_CreateBook_TooBigFileNoRequest() {
	ctx := context.Background()
	draft := validDraft()
	draft.File.Size = 60 << 20

	_, err := s.service.CreateBook(ctx, "token", "u1", draft)

	var validationErr *ValidationError
	assert.True(s.T(), errors.As(err, &validationErr))
	assert.Equal(s.T(), "File must be less than 50MB", validationErr.Message)
}

func (s *bookServiceSuite) Test_CreateBook_WrongFileTypeNoRequest() {
	ctx := context.Background()
	draft := validDraft()
	draft.File.MIME = "text/plain"

	_, err := s.service.CreateBook(ctx, "token", "u1", draft)

	var validationErr *ValidationError
	assert.True(s.T(), errors.As(err, &validationErr))
	assert.Equal(s.T(), "Only PDF and EPUB files are allowed", validationErr.Message)
}

func (s *bookServiceSuite) Test_CreateBook_TooBigCoverNoRequest() {
	ctx := context.Background()
	draft := validDraft()
	draft.CoverImage.Size = 11 << 20

	_, err := s.service.CreateBook(ctx, "token", "u1", draft)

	var validationErr *ValidationError
	assert.True(s.T(), errors.As(err, &validationErr))
	assert.Equal(s.T(), "Image must be less than 10MB", validationErr.Message)
}

func (s *bookServiceSuite) Test_CreateBook_NonImageCoverNoRequest() {
	ctx := context.Background()
	draft := validDraft()
	draft.CoverImage.MIME = "application/pdf"

	_, err := s.service.CreateBook(ctx, "token", "u1", draft)

	var validationErr *ValidationError
	assert.True(s.T(), errors.As(err, &validationErr))
	assert.Equal(s.T(), "Only images are allowed", validationErr.Message)
}

func (s *bookServiceSuite) Test_CreateBook_PlatformErrNoInvalidation() {
	ctx := context.Background()
	draft := validDraft()
	platformErr := errors.New("platform error")

	s.platform.EXPECT().
		CreateBook(ctx, "token", draft).
		Return("", platformErr)

	_, err := s.service.CreateBook(ctx, "token", "u1", draft)

	assert.Equal(s.T(), platformErr, err)
}

func (s *bookServiceSuite) Test_EditBook_Success() {
	ctx := context.Background()
	draft := model.BookDraft{Title: "new title", Genre: "genre", Description: "description"}
	updated := model.Book{ID: "b1", Title: "new title"}

	s.platform.EXPECT().
		UpdateBook(ctx, "token", "b1", draft).
		Return(updated, nil)

	s.cache.EXPECT().
		InvalidateBooks(ctx, "u1").
		Return(nil).
		Times(1)

	res, err := s.service.EditBook(ctx, "token", "u1", "b1", draft)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), updated, res)
}

func (s *bookServiceSuite) Test_DeleteBook_PlatformErrNoInvalidation() {
	ctx := context.Background()
	platformErr := errors.New("platform error")

	s.platform.EXPECT().
		DeleteBook(ctx, "token", "b1").
		Return(platformErr)

	err := s.service.DeleteBook(ctx, "token", "u1", "b1")

	assert.Equal(s.T(), platformErr, err)
}

func (s *bookServiceSuite) Test_DeleteBook_SuccessInvalidatesCache() {
	ctx := context.Background()

	s.platform.EXPECT().
		DeleteBook(ctx, "token", "b1").
		Return(nil)

	s.cache.EXPECT().
		InvalidateBooks(ctx, "u1").
		Return(nil).
		Times(1)

	err := s.service.DeleteBook(ctx, "token", "u1", "b1")

	assert.Nil(s.T(), err)
}

func (s *bookServiceSuite) Test_GetBookFile_CacheHitNoDownload() {
	ctx := context.Background()
	fileURL := "https://storage.example.com/book.pdf"

	cachedPath := filepath.Join(s.cfg.FilesStorageDir, "book.pdf")
	err := os.WriteFile(cachedPath, []byte("book content"), 0644)
	assert.Nil(s.T(), err)

	s.cache.EXPECT().
		GetBlobPath(ctx, fileURL).
		Return(cachedPath, nil)

	res, err := s.service.GetBookFile(ctx, fileURL)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), cachedPath, res)
}

func (s *bookServiceSuite) Test_GetBookFile_CacheMissDownloadsAndStores() {
	ctx := context.Background()
	fileURL := "https://storage.example.com/book.pdf"
	fileBytes := []byte("book content")

	s.cache.EXPECT().
		GetBlobPath(ctx, fileURL).
		Return("", cache.ErrNotFound)

	s.fileDownloader.EXPECT().
		Download(ctx, fileURL).
		Return(fileBytes, "book.pdf", nil)

	s.cache.EXPECT().
		SetBlobPath(ctx, fileURL, gomock.Any()).
		Return(nil)

	res, err := s.service.GetBookFile(ctx, fileURL)

	assert.Nil(s.T(), err)

	stored, err := os.ReadFile(res)
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), fileBytes, stored)
}

func (s *bookServiceSuite) Test_GetBookFile_StaleIndexRedownloads() {
	ctx := context.Background()
	fileURL := "https://storage.example.com/book.pdf"
	fileBytes := []byte("book content")

	s.cache.EXPECT().
		GetBlobPath(ctx, fileURL).
		Return(filepath.Join(s.cfg.FilesStorageDir, "deleted.pdf"), nil)

	s.fileDownloader.EXPECT().
		Download(ctx, fileURL).
		Return(fileBytes, "book.pdf", nil)

	s.cache.EXPECT().
		SetBlobPath(ctx, fileURL, gomock.Any()).
		Return(nil)

	res, err := s.service.GetBookFile(ctx, fileURL)

	assert.Nil(s.T(), err)
	assert.FileExists(s.T(), res)
}

func (s *bookServiceSuite) Test_GetBookFile_DownloadErr() {
	ctx := context.Background()
	fileURL := "https://storage.example.com/book.pdf"
	downloadErr := errors.New("download error")

	s.cache.EXPECT().
		GetBlobPath(ctx, fileURL).
		Return("", cache.ErrNotFound)

	s.fileDownloader.EXPECT().
		Download(ctx, fileURL).
		Return(nil, "", downloadErr)

	_, err := s.service.GetBookFile(ctx, fileURL)

	assert.Equal(s.T(), downloadErr, err)
}

func (s *bookServiceSuite) Test_SendToDevice_Success() {
	var chatID int64 = 1
	ctx := context.Background()
	email := "user@kindle.com"
	book := model.Book{ID: "b1", Title: "title1", File: "https://storage.example.com/book.pdf"}

	cachedPath := filepath.Join(s.cfg.FilesStorageDir, "book.pdf")
	err := os.WriteFile(cachedPath, []byte("book content"), 0644)
	assert.Nil(s.T(), err)

	s.repo.EXPECT().
		GetDeviceEmail(ctx, chatID).
		Return(email, nil)

	s.cache.EXPECT().
		GetBlobPath(ctx, book.File).
		Return(cachedPath, nil)

	s.mailer.EXPECT().
		SendFile(ctx, email, book.Title, cachedPath).
		Return(nil)

	s.repo.EXPECT().
		AddDownload(ctx, chatID, book.ID, book.Title).
		Return(nil)

	err = s.service.SendToDevice(ctx, chatID, book)

	assert.Nil(s.T(), err)
}

func (s *bookServiceSuite) Test_SendToDevice_EmailNotLinkedErr() {
	var chatID int64 = 1
	ctx := context.Background()
	book := model.Book{ID: "b1", Title: "title1", File: "https://storage.example.com/book.pdf"}

	s.repo.EXPECT().
		GetDeviceEmail(ctx, chatID).
		Return("", repository.ErrNoRows)

	err := s.service.SendToDevice(ctx, chatID, book)

	assert.Equal(s.T(), ErrEmailNotLinked, err)
}

func (s *bookServiceSuite) Test_ValidateDraft_MissingTitle() {
	draft := validDraft()
	draft.Title = ""

	err := s.service.ValidateDraft(draft, true)

	var validationErr *ValidationError
	assert.True(s.T(), errors.As(err, &validationErr))
	assert.Equal(s.T(), "title", validationErr.Field)
}

func (s *bookServiceSuite) Test_ValidateDraft_EditWithoutFiles() {
	draft := model.BookDraft{Title: "title", Genre: "genre", Description: "description"}

	err := s.service.ValidateDraft(draft, false)

	assert.Nil(s.T(), err)
}

func (s *bookServiceSuite) Test_FixGrammar_Passthrough() {
	ctx := context.Background()

	s.platform.EXPECT().
		FixGrammar(ctx, "token", "teh text").
		Return("the text", nil)

	res, err := s.service.FixGrammar(ctx, "token", "teh text")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "the text", res)
}

func (s *bookServiceSuite) Test_ImproveDescription_Passthrough() {
	ctx := context.Background()

	s.platform.EXPECT().
		ImproveDescription(ctx, "token", "text", "make it shine").
		Return("shiny text", nil)

	res, err := s.service.ImproveDescription(ctx, "token", "text", "make it shine")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "shiny text", res)
}
