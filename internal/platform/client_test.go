package platform

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"bookshelf_tgbot/config"
	"bookshelf_tgbot/internal/model"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type platformClientSuite struct {
	suite.Suite

	cfg    *config.Config
	client *Client
}

func TestPlatformClientSuite(t *testing.T) {
	suite.Run(t, new(platformClientSuite))
}

func (s *platformClientSuite) SetupSuite() {
	s.cfg = &config.Config{
		Platform: config.Platform{
			BaseUrl:                "https://platform.test",
			FixGrammarPath:         "/api/ai/fix-grammar",
			ImproveDescriptionPath: "/api/ai/improve-description",
		},
	}
}

func (s *platformClientSuite) SetupTest() {
	s.client = New(s.cfg)
}

func (s *platformClientSuite) Test_Login_Success() {
	defer gock.Off()

	gock.New(s.cfg.Platform.BaseUrl).
		Post("/api/users/login").
		JSON(map[string]string{"email": "test@gmail.com", "password": "password"}).
		Reply(200).
		JSON(map[string]string{"accessToken": "token"})

	token, err := s.client.Login(context.Background(), "test@gmail.com", "password")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "token", token)
	assert.True(s.T(), gock.IsDone())
}

func (s *platformClientSuite) Test_Login_BadCredentialsErr() {
	defer gock.Off()

	gock.New(s.cfg.Platform.BaseUrl).
		Post("/api/users/login").
		Reply(400).
		JSON(map[string]string{"message": "Invalid credentials"})

	_, err := s.client.Login(context.Background(), "test@gmail.com", "wrong")

	var apiErr *APIError
	assert.True(s.T(), errors.As(err, &apiErr))
	assert.Equal(s.T(), 400, apiErr.StatusCode)
	assert.Equal(s.T(), "Invalid credentials", apiErr.Message)
}

func (s *platformClientSuite) Test_Register_Success() {
	defer gock.Off()

	gock.New(s.cfg.Platform.BaseUrl).
		Post("/api/users/register").
		JSON(map[string]string{"name": "name", "email": "test@gmail.com", "password": "password"}).
		Reply(201).
		JSON(map[string]string{"accessToken": "token"})

	token, err := s.client.Register(context.Background(), "name", "test@gmail.com", "password")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "token", token)
}

func (s *platformClientSuite) Test_CurrentUser_SendsBearerToken() {
	defer gock.Off()

	gock.New(s.cfg.Platform.BaseUrl).
		Get("/api/users").
		MatchHeader("Authorization", "Bearer token").
		Reply(200).
		JSON(map[string]string{"id": "u1", "name": "name", "email": "test@gmail.com"})

	user, err := s.client.CurrentUser(context.Background(), "token")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "u1", user.ID)
	assert.True(s.T(), gock.IsDone())
}

func (s *platformClientSuite) Test_CurrentUser_UnauthorizedErr() {
	defer gock.Off()

	gock.New(s.cfg.Platform.BaseUrl).
		Get("/api/users").
		Reply(401).
		JSON(map[string]string{"message": "Unauthorized"})

	_, err := s.client.CurrentUser(context.Background(), "expired")

	assert.Equal(s.T(), ErrUnauthorized, err)
}

func (s *platformClientSuite) Test_UpdateProfile_NoChangesErr() {
	defer gock.Off()

	gock.New(s.cfg.Platform.BaseUrl).
		Patch("/api/users").
		Reply(400).
		JSON(map[string]string{"message": "NO_CHANGES"})

	_, err := s.client.UpdateProfile(context.Background(), "token", model.ProfileDraft{Name: "same"})

	assert.Equal(s.T(), ErrNoChanges, err)
}

func (s *platformClientSuite) Test_UpdateProfile_Success() {
	defer gock.Off()

	gock.New(s.cfg.Platform.BaseUrl).
		Patch("/api/users").
		MatchHeader("Authorization", "Bearer token").
		MatchHeader("Content-Type", "multipart/form-data.*").
		Reply(200).
		JSON(map[string]string{"id": "u1", "name": "new name"})

	user, err := s.client.UpdateProfile(context.Background(), "token", model.ProfileDraft{Name: "new name"})

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "new name", user.Name)
}

func (s *platformClientSuite) Test_ListBooks_Success() {
	defer gock.Off()

	gock.New(s.cfg.Platform.BaseUrl).
		Get("/api/books").
		MatchHeader("Authorization", "Bearer token").
		Reply(200).
		JSON([]map[string]any{
			{"_id": "b1", "title": "title1", "author": map[string]string{"_id": "u1", "name": "author1"}},
			{"_id": "b2", "title": "title2", "author": map[string]string{"_id": "u2", "name": "author2"}},
		})

	books, err := s.client.ListBooks(context.Background(), "token")

	assert.Nil(s.T(), err)
	assert.Len(s.T(), books, 2)
	assert.Equal(s.T(), "b1", books[0].ID)
	assert.Equal(s.T(), "author2", books[1].Author.Name)
}

func (s *platformClientSuite) Test_CreateBook_Success() {
	defer gock.Off()

	dir := s.T().TempDir()
	coverPath := filepath.Join(dir, "cover.png")
	filePath := filepath.Join(dir, "book.pdf")
	assert.Nil(s.T(), os.WriteFile(coverPath, []byte("png bytes"), 0644))
	assert.Nil(s.T(), os.WriteFile(filePath, []byte("pdf bytes"), 0644))

	draft := model.BookDraft{
		Title:       "title",
		Genre:       "genre",
		Description: "description",
		CoverImage:  &model.FileRef{Name: "cover.png", MIME: "image/png", Path: coverPath},
		File:        &model.FileRef{Name: "book.pdf", MIME: "application/pdf", Path: filePath},
	}

	gock.New(s.cfg.Platform.BaseUrl).
		Post("/api/books").
		MatchHeader("Authorization", "Bearer token").
		MatchHeader("Content-Type", "multipart/form-data.*").
		Reply(201).
		JSON(map[string]string{"id": "b1"})

	bookID, err := s.client.CreateBook(context.Background(), "token", draft)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "b1", bookID)
	assert.True(s.T(), gock.IsDone())
}

func (s *platformClientSuite) Test_UpdateBook_Success() {
	defer gock.Off()

	draft := model.BookDraft{Title: "new title", Genre: "genre", Description: "description"}

	gock.New(s.cfg.Platform.BaseUrl).
		Patch("/api/books/b1").
		Reply(200).
		JSON(map[string]any{"_id": "b1", "title": "new title"})

	book, err := s.client.UpdateBook(context.Background(), "token", "b1", draft)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "new title", book.Title)
}

func (s *platformClientSuite) Test_DeleteBook_Success() {
	defer gock.Off()

	gock.New(s.cfg.Platform.BaseUrl).
		Delete("/api/books/b1").
		MatchHeader("Authorization", "Bearer token").
		Reply(204)

	err := s.client.DeleteBook(context.Background(), "token", "b1")

	assert.Nil(s.T(), err)
}

func (s *platformClientSuite) Test_FixGrammar_Success() {
	defer gock.Off()

	gock.New(s.cfg.Platform.BaseUrl).
		Post(s.cfg.Platform.FixGrammarPath).
		JSON(map[string]string{"text": "teh text"}).
		Reply(200).
		JSON(map[string]string{"correctedText": "the text"})

	res, err := s.client.FixGrammar(context.Background(), "token", "teh text")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "the text", res)
}

func (s *platformClientSuite) Test_ImproveDescription_Success() {
	defer gock.Off()

	gock.New(s.cfg.Platform.BaseUrl).
		Post(s.cfg.Platform.ImproveDescriptionPath).
		JSON(map[string]string{"text": "text", "prompt": "make it shine"}).
		Reply(200).
		JSON(map[string]string{"improvedText": "shiny text"})

	res, err := s.client.ImproveDescription(context.Background(), "token", "text", "make it shine")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "shiny text", res)
}
