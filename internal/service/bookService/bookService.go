package bookService

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"

	"bookshelf_tgbot/config"
	"bookshelf_tgbot/data/cache"
	"bookshelf_tgbot/internal/lib/files"
	"bookshelf_tgbot/internal/model"
	"bookshelf_tgbot/internal/repository"
	"bookshelf_tgbot/internal/service"
	"bookshelf_tgbot/utils"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"
)

const (
	MaxCoverImageSize = 10 << 20
	MaxBookFileSize   = 50 << 20
)

const (
	msgTitleRequired      = "Title is required"
	msgGenreRequired      = "Genre is required"
	msgDescrRequired      = "Description is required"
	msgCoverRequired      = "Cover image is required"
	msgFileRequired       = "Book file is required"
	msgOnlyImages         = "Only images are allowed"
	msgOnlyPdfEpub        = "Only PDF and EPUB files are allowed"
	msgCoverTooBig        = "Image must be less than 10MB"
	msgFileTooBig         = "File must be less than 50MB"
)

var allowedCoverMIMEs = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
}

var allowedFileMIMEs = map[string]struct{}{
	"application/pdf":      {},
	"application/epub+zip": {},
}

type PlatformAPI interface {
	ListBooks(ctx context.Context, token string) ([]model.Book, error)
	CreateBook(ctx context.Context, token string, draft model.BookDraft) (bookID string, err error)
	UpdateBook(ctx context.Context, token string, bookID string, draft model.BookDraft) (model.Book, error)
	DeleteBook(ctx context.Context, token string, bookID string) error
	FixGrammar(ctx context.Context, token string, text string) (string, error)
	ImproveDescription(ctx context.Context, token string, text string, prompt string) (string, error)
}

type Cache interface {
	GetBooks(ctx context.Context, userID string) ([]model.Book, error)
	SetBooks(ctx context.Context, userID string, books []model.Book) error
	InvalidateBooks(ctx context.Context, userID string) error
	GetBlobPath(ctx context.Context, fileURL string) (string, error)
	SetBlobPath(ctx context.Context, fileURL string, path string) error
}

type Repository interface {
	GetDeviceEmail(ctx context.Context, chatId int64) (string, error)
	AddDownload(ctx context.Context, chatId int64, bookId string, title string) error
	GetRecentDownloads(ctx context.Context, chatId int64, limit int) ([]model.DownloadRecord, error)
}

type FileDownloader interface {
	Download(ctx context.Context, url string) (fileBytes []byte, filename string, err error)
}

type Mailer interface {
	SendFile(ctx context.Context, to string, subject string, filePath string) error
}

type BookService struct {
	cfg        *config.Config
	platform   PlatformAPI
	cache      Cache
	repo       Repository
	downloader FileDownloader
	mailer     Mailer
	validate   *validator.Validate
	blobGroup  singleflight.Group
}

func New(
	cfg *config.Config,
	platform PlatformAPI,
	bookCache Cache,
	repo Repository,
	downloader FileDownloader,
	mailer Mailer,
) *BookService {
	return &BookService{
		cfg:        cfg,
		platform:   platform,
		cache:      bookCache,
		repo:       repo,
		downloader: downloader,
		mailer:     mailer,
		validate:   validator.New(),
	}
}

// getBooks возвращает список книг из кэша, при промахе — один запрос к
// платформе и репопуляция кэша.
func (s *BookService) getBooks(ctx context.Context, token string, userID string) ([]model.Book, error) {
	op := "BookService.getBooks"
	rqID := utils.GetRequestIDFromCtx(ctx)

	books, err := s.cache.GetBooks(ctx, userID)
	if err == nil {
		return books, nil
	}
	if !errors.Is(err, cache.ErrNotFound) {
		slog.Warn("books cache read failed, falling back to platform", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}

	books, err = s.platform.ListBooks(ctx, token)
	if err != nil {
		return nil, err
	}

	if err = s.cache.SetBooks(ctx, userID, books); err != nil {
		slog.Warn("books cache write failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}

	return books, nil
}

func (s *BookService) GetBooksPage(ctx context.Context, token string, userID string, page int) (model.BooksPage, error) {
	if page < 0 {
		return model.BooksPage{}, ErrIncorrectPage
	}

	books, err := s.getBooks(ctx, token, userID)
	if err != nil {
		return model.BooksPage{}, err
	}

	from := page * s.cfg.BooksPerPage
	to := from + s.cfg.BooksPerPage

	if from >= len(books) {
		if page == 0 {
			return model.BooksPage{Books: nil, Page: 0, HasNextPage: false}, nil
		}
		return model.BooksPage{}, ErrIncorrectPage
	}

	if to > len(books) {
		to = len(books)
	}

	return model.BooksPage{
		Books:       books[from:to],
		Page:        page,
		HasNextPage: to < len(books),
	}, nil
}

func (s *BookService) GetBook(ctx context.Context, token string, userID string, bookID string) (model.Book, error) {
	books, err := s.getBooks(ctx, token, userID)
	if err != nil {
		return model.Book{}, err
	}

	for _, book := range books {
		if book.ID == bookID {
			return book, nil
		}
	}

	return model.Book{}, service.ErrNotFound
}

func (s *BookService) CreateBook(ctx context.Context, token string, userID string, draft model.BookDraft) (bookID string, err error) {
	op := "BookService.CreateBook"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if err = s.ValidateDraft(draft, true); err != nil {
		return "", err
	}

	bookID, err = s.platform.CreateBook(ctx, token, draft)
	if err != nil {
		return "", err
	}

	// инвалидация строго после успешного ответа платформы и ровно один раз
	if invErr := s.cache.InvalidateBooks(ctx, userID); invErr != nil {
		slog.Warn("books cache invalidation failed after create", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", invErr.Error()))
	}

	s.cleanupDraftFiles(draft)

	return bookID, nil
}

func (s *BookService) EditBook(ctx context.Context, token string, userID string, bookID string, draft model.BookDraft) (model.Book, error) {
	op := "BookService.EditBook"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if err := s.ValidateDraft(draft, false); err != nil {
		return model.Book{}, err
	}

	book, err := s.platform.UpdateBook(ctx, token, bookID, draft)
	if err != nil {
		return model.Book{}, err
	}

	if invErr := s.cache.InvalidateBooks(ctx, userID); invErr != nil {
		slog.Warn("books cache invalidation failed after edit", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", invErr.Error()))
	}

	s.cleanupDraftFiles(draft)

	return book, nil
}

func (s *BookService) DeleteBook(ctx context.Context, token string, userID string, bookID string) error {
	op := "BookService.DeleteBook"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if err := s.platform.DeleteBook(ctx, token, bookID); err != nil {
		return err
	}

	if invErr := s.cache.InvalidateBooks(ctx, userID); invErr != nil {
		slog.Warn("books cache invalidation failed after delete", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", invErr.Error()))
	}

	return nil
}

// GetBookFile возвращает локальный путь к файлу книги. Повторные конкурентные
// запросы одного URL схлопываются в одну загрузку, скачанный файл живет на
// диске пока не истечет индексная запись в кэше.
func (s *BookService) GetBookFile(ctx context.Context, fileURL string) (string, error) {
	op := "BookService.GetBookFile"
	rqID := utils.GetRequestIDFromCtx(ctx)

	v, err, _ := s.blobGroup.Do(fileURL, func() (any, error) {
		cachedPath, err := s.cache.GetBlobPath(ctx, fileURL)
		if err == nil {
			if _, statErr := os.Stat(cachedPath); statErr == nil {
				slog.Debug("blob cache hit", slog.String("rqID", rqID), slog.String("op", op), slog.String("path", cachedPath))
				return cachedPath, nil
			}
			// индексная запись жива, а файла нет — качаем заново
		} else if !errors.Is(err, cache.ErrNotFound) {
			slog.Warn("blob cache read failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		}

		data, filename, err := s.downloader.Download(ctx, fileURL)
		if err != nil {
			return nil, err
		}

		storedPath, err := files.CreateFile(s.cfg.FilesStorageDir, filename, bytes.NewReader(data))
		if err != nil {
			return nil, err
		}

		if err = s.cache.SetBlobPath(ctx, fileURL, storedPath); err != nil {
			slog.Warn("blob cache write failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		}

		return storedPath, nil
	})
	if err != nil {
		return "", err
	}

	return v.(string), nil
}

func (s *BookService) SendToDevice(ctx context.Context, chatId int64, book model.Book) error {
	email, err := s.repo.GetDeviceEmail(ctx, chatId)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return ErrEmailNotLinked
		}
		return err
	}

	filePath, err := s.GetBookFile(ctx, book.File)
	if err != nil {
		return err
	}

	if err = s.mailer.SendFile(ctx, email, book.Title, filePath); err != nil {
		return err
	}

	s.recordDownload(ctx, chatId, book)

	return nil
}

func (s *BookService) RecordDownload(ctx context.Context, chatId int64, book model.Book) {
	s.recordDownload(ctx, chatId, book)
}

func (s *BookService) recordDownload(ctx context.Context, chatId int64, book model.Book) {
	op := "BookService.recordDownload"
	if err := s.repo.AddDownload(ctx, chatId, book.ID, book.Title); err != nil {
		slog.Warn("failed to record download", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
	}
}

func (s *BookService) GetRecentDownloads(ctx context.Context, chatId int64, limit int) ([]model.DownloadRecord, error) {
	return s.repo.GetRecentDownloads(ctx, chatId, limit)
}

func (s *BookService) FixGrammar(ctx context.Context, token string, text string) (string, error) {
	return s.platform.FixGrammar(ctx, token, text)
}

func (s *BookService) ImproveDescription(ctx context.Context, token string, text string, prompt string) (string, error) {
	return s.platform.ImproveDescription(ctx, token, text, prompt)
}

// CleanupBlobs удаляет с диска файлы старше TTL блоб-кэша, индексные записи
// в redis к этому моменту уже истекли.
func (s *BookService) CleanupBlobs(_ context.Context) error {
	return files.DeleteOlderThan(s.cfg.FilesStorageDir, s.cfg.BlobCacheTTL)
}

// ValidateDraft проверяет черновик книги до любого сетевого запроса.
// requireFiles=true для создания (оба файла обязательны), false для правки.
func (s *BookService) ValidateDraft(draft model.BookDraft, requireFiles bool) error {
	if err := s.validate.Struct(draft); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			switch fieldErrs[0].Field() {
			case "Title":
				return &ValidationError{Field: "title", Message: msgTitleRequired}
			case "Genre":
				return &ValidationError{Field: "genre", Message: msgGenreRequired}
			case "Description":
				return &ValidationError{Field: "description", Message: msgDescrRequired}
			}
		}
		return err
	}

	if err := validateCover(draft.CoverImage, requireFiles); err != nil {
		return err
	}

	return validateBookFile(draft.File, requireFiles)
}

func validateCover(ref *model.FileRef, required bool) error {
	if ref == nil {
		if required {
			return &ValidationError{Field: "coverImage", Message: msgCoverRequired}
		}
		return nil
	}

	return CheckCoverUpload(ref.MIME, ref.Size)
}

func validateBookFile(ref *model.FileRef, required bool) error {
	if ref == nil {
		if required {
			return &ValidationError{Field: "file", Message: msgFileRequired}
		}
		return nil
	}

	return CheckBookFileUpload(ref.MIME, ref.Size)
}

// CheckCoverUpload валидирует тип и размер обложки. Вызывается транспортом
// до скачивания файла из Telegram, невалидный файл не качаем вообще.
func CheckCoverUpload(mime string, size int64) error {
	if _, ok := allowedCoverMIMEs[mime]; !ok {
		return &ValidationError{Field: "coverImage", Message: msgOnlyImages}
	}

	if size > MaxCoverImageSize {
		return &ValidationError{Field: "coverImage", Message: msgCoverTooBig}
	}

	return nil
}

// CheckBookFileUpload валидирует тип и размер файла книги до скачивания.
func CheckBookFileUpload(mime string, size int64) error {
	if _, ok := allowedFileMIMEs[mime]; !ok {
		return &ValidationError{Field: "file", Message: msgOnlyPdfEpub}
	}

	if size > MaxBookFileSize {
		return &ValidationError{Field: "file", Message: msgFileTooBig}
	}

	return nil
}

func (s *BookService) cleanupDraftFiles(draft model.BookDraft) {
	for _, ref := range []*model.FileRef{draft.CoverImage, draft.File} {
		if ref == nil || ref.Path == "" {
			continue
		}
		if err := files.DeleteFile(ref.Path); err != nil {
			slog.Warn("failed to delete draft file", slog.String("path", ref.Path), slog.String("err", err.Error()))
		}
	}
}
