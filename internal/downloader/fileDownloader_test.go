package downloader

import (
	"context"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type fileDownloaderSuite struct {
	suite.Suite

	downloader *FileDownloader
}

func TestFileDownloaderSuite(t *testing.T) {
	suite.Run(t, new(fileDownloaderSuite))
}

func (s *fileDownloaderSuite) SetupTest() {
	s.downloader = NewFileDownloader()
}

func (s *fileDownloaderSuite) Test_Download_Success() {
	defer gock.Off()

	fileUrl := "https://storage.test/files/book.pdf"
	content := []byte("pdf content")

	gock.New("https://storage.test").
		Get("/files/book.pdf").
		Reply(200).
		BodyString(string(content))

	fileBytes, filename, err := s.downloader.Download(context.Background(), fileUrl)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), content, fileBytes)
	assert.Equal(s.T(), "book.pdf", filename)
	assert.True(s.T(), gock.IsDone())
}

func (s *fileDownloaderSuite) Test_Download_FilenameFromContentDisposition() {
	defer gock.Off()

	fileUrl := "https://storage.test/files/abc123"

	gock.New("https://storage.test").
		Get("/files/abc123").
		Reply(200).
		SetHeader("Content-Disposition", `attachment; filename="book.epub"`).
		BodyString("epub content")

	_, filename, err := s.downloader.Download(context.Background(), fileUrl)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "book.epub", filename)
}

func (s *fileDownloaderSuite) Test_Download_RetriesOnServerErr() {
	defer gock.Off()

	fileUrl := "https://storage.test/files/book.pdf"
	content := []byte("pdf content")

	gock.New("https://storage.test").
		Get("/files/book.pdf").
		Reply(500)

	gock.New("https://storage.test").
		Get("/files/book.pdf").
		Reply(200).
		BodyString(string(content))

	fileBytes, _, err := s.downloader.Download(context.Background(), fileUrl)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), content, fileBytes)
	assert.True(s.T(), gock.IsDone())
}

func (s *fileDownloaderSuite) Test_Download_GivesUpAfterMaxAttempts() {
	defer gock.Off()

	fileUrl := "https://storage.test/files/book.pdf"

	for range maxAttempts {
		gock.New("https://storage.test").
			Get("/files/book.pdf").
			Reply(500)
	}

	_, _, err := s.downloader.Download(context.Background(), fileUrl)

	assert.NotNil(s.T(), err)
	assert.True(s.T(), gock.IsDone())
}

func (s *fileDownloaderSuite) Test_Download_EmptyURLErr() {
	_, _, err := s.downloader.Download(context.Background(), "")

	assert.Equal(s.T(), ErrEmptyURL, err)
}

func (s *fileDownloaderSuite) Test_Download_CancelledCtx() {
	defer gock.Off()

	fileUrl := "https://storage.test/files/book.pdf"

	gock.New("https://storage.test").
		Get("/files/book.pdf").
		Reply(500)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := s.downloader.Download(ctx, fileUrl)

	assert.Equal(s.T(), context.Canceled, err)
}
