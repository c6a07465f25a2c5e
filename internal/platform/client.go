package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path"

	"bookshelf_tgbot/config"
	"bookshelf_tgbot/internal/model"
	"bookshelf_tgbot/utils"
)

const noChangesMessage = "NO_CHANGES"

// Client — тонкий REST клиент платформы. Один метод на одну операцию сервера,
// без ретраев и бэкоффа: ошибка уходит вызывающему как есть.
type Client struct {
	cfg    *config.Config
	client *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{cfg: cfg, client: &http.Client{}}
}

func (c *Client) Login(ctx context.Context, email, password string) (accessToken string, err error) {
	op := "platform.Client.Login"

	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var res struct {
		AccessToken string `json:"accessToken"`
	}

	if err = c.doJSON(ctx, "", http.MethodPost, "/api/users/login", body, &res); err != nil {
		c.logErr(ctx, op, err)
		return "", err
	}

	return res.AccessToken, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) (accessToken string, err error) {
	op := "platform.Client.Register"

	body := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Name: name, Email: email, Password: password}

	var res struct {
		AccessToken string `json:"accessToken"`
	}

	if err = c.doJSON(ctx, "", http.MethodPost, "/api/users/register", body, &res); err != nil {
		c.logErr(ctx, op, err)
		return "", err
	}

	return res.AccessToken, nil
}

func (c *Client) CurrentUser(ctx context.Context, token string) (model.User, error) {
	op := "platform.Client.CurrentUser"

	var user model.User
	if err := c.doJSON(ctx, token, http.MethodGet, "/api/users", nil, &user); err != nil {
		c.logErr(ctx, op, err)
		return model.User{}, err
	}

	return user, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token string, draft model.ProfileDraft) (model.User, error) {
	op := "platform.Client.UpdateProfile"

	fields := map[string]string{}
	if draft.Name != "" {
		fields["name"] = draft.Name
	}
	if draft.Bio != "" {
		fields["bio"] = draft.Bio
	}

	body, contentType, err := buildMultipart(fields, map[string]*model.FileRef{"profilePicture": draft.ProfilePicture})
	if err != nil {
		c.logErr(ctx, op, err)
		return model.User{}, err
	}

	var user model.User
	if err = c.doRaw(ctx, token, http.MethodPatch, "/api/users", contentType, body, &user); err != nil {
		c.logErr(ctx, op, err)
		return model.User{}, err
	}

	return user, nil
}

func (c *Client) ListBooks(ctx context.Context, token string) ([]model.Book, error) {
	op := "platform.Client.ListBooks"

	var books []model.Book
	if err := c.doJSON(ctx, token, http.MethodGet, "/api/books", nil, &books); err != nil {
		c.logErr(ctx, op, err)
		return nil, err
	}

	return books, nil
}

func (c *Client) CreateBook(ctx context.Context, token string, draft model.BookDraft) (bookID string, err error) {
	op := "platform.Client.CreateBook"

	fields := map[string]string{
		"title":       draft.Title,
		"genre":       draft.Genre,
		"description": draft.Description,
	}

	body, contentType, err := buildMultipart(fields, map[string]*model.FileRef{
		"coverImage": draft.CoverImage,
		"file":       draft.File,
	})
	if err != nil {
		c.logErr(ctx, op, err)
		return "", err
	}

	var res struct {
		ID string `json:"id"`
	}
	if err = c.doRaw(ctx, token, http.MethodPost, "/api/books", contentType, body, &res); err != nil {
		c.logErr(ctx, op, err)
		return "", err
	}

	return res.ID, nil
}

func (c *Client) UpdateBook(ctx context.Context, token string, bookID string, draft model.BookDraft) (model.Book, error) {
	op := "platform.Client.UpdateBook"

	fields := map[string]string{
		"title":       draft.Title,
		"genre":       draft.Genre,
		"description": draft.Description,
	}

	body, contentType, err := buildMultipart(fields, map[string]*model.FileRef{
		"coverImage": draft.CoverImage,
		"file":       draft.File,
	})
	if err != nil {
		c.logErr(ctx, op, err)
		return model.Book{}, err
	}

	var book model.Book
	if err = c.doRaw(ctx, token, http.MethodPatch, "/api/books/"+bookID, contentType, body, &book); err != nil {
		c.logErr(ctx, op, err)
		return model.Book{}, err
	}

	return book, nil
}

func (c *Client) DeleteBook(ctx context.Context, token string, bookID string) error {
	op := "platform.Client.DeleteBook"

	if err := c.doJSON(ctx, token, http.MethodDelete, "/api/books/"+bookID, nil, nil); err != nil {
		c.logErr(ctx, op, err)
		return err
	}

	return nil
}

func (c *Client) FixGrammar(ctx context.Context, token string, text string) (correctedText string, err error) {
	op := "platform.Client.FixGrammar"

	body := struct {
		Text string `json:"text"`
	}{Text: text}

	var res struct {
		CorrectedText string `json:"correctedText"`
	}

	if err = c.doJSON(ctx, token, http.MethodPost, c.cfg.Platform.FixGrammarPath, body, &res); err != nil {
		c.logErr(ctx, op, err)
		return "", err
	}

	return res.CorrectedText, nil
}

func (c *Client) ImproveDescription(ctx context.Context, token string, text string, prompt string) (improvedText string, err error) {
	op := "platform.Client.ImproveDescription"

	body := struct {
		Text   string `json:"text"`
		Prompt string `json:"prompt,omitempty"`
	}{Text: text, Prompt: prompt}

	var res struct {
		ImprovedText string `json:"improvedText"`
	}

	if err = c.doJSON(ctx, token, http.MethodPost, c.cfg.Platform.ImproveDescriptionPath, body, &res); err != nil {
		c.logErr(ctx, op, err)
		return "", err
	}

	return res.ImprovedText, nil
}

func (c *Client) doJSON(ctx context.Context, token, method, path string, reqBody any, out any) error {
	var body io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	return c.doRaw(ctx, token, method, path, "application/json", body, out)
}

func (c *Client) doRaw(ctx context.Context, token, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.cfg.Platform.BaseUrl+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err = checkResponse(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}

	return nil
}

func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var apiErr struct {
		Message string `json:"message"`
	}
	data, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(data, &apiErr)

	if apiErr.Message == noChangesMessage {
		return ErrNoChanges
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Message}
}

// buildMultipart собирает multipart/form-data тело. Файлы с nil ссылкой пропускаются.
func buildMultipart(fields map[string]string, files map[string]*model.FileRef) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	for name, ref := range files {
		if ref == nil {
			continue
		}

		f, err := os.Open(ref.Path)
		if err != nil {
			return nil, "", fmt.Errorf("open %s: %w", ref.Path, err)
		}

		filename := ref.Name
		if filename == "" {
			filename = path.Base(ref.Path)
		}

		part, err := w.CreateFormFile(name, filename)
		if err != nil {
			f.Close()
			return nil, "", err
		}

		if _, err = io.Copy(part, f); err != nil {
			f.Close()
			return nil, "", err
		}
		f.Close()
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf, w.FormDataContentType(), nil
}

func (c *Client) logErr(ctx context.Context, op string, err error) {
	if errors.Is(err, ErrNoChanges) {
		return
	}
	slog.Error("platform request failed", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
}
