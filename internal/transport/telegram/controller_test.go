package telegram

import (
	"context"
	"testing"

	"bookshelf_tgbot/config"
	"bookshelf_tgbot/data/session"
	"bookshelf_tgbot/internal/converter/telebotConverter"
	"bookshelf_tgbot/internal/model"
	"bookshelf_tgbot/internal/transport/telegram/mocks"
	"bookshelf_tgbot/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	tele "gopkg.in/telebot.v4"
)

// fakeTeleCtx подменяет telebot-контекст: хранит значения Get/Set и
// собирает все отправленные в чат сообщения.
type fakeTeleCtx struct {
	tele.Context

	values map[string]any
	sent   []any
}

func newFakeTeleCtx() *fakeTeleCtx {
	return &fakeTeleCtx{values: map[string]any{}}
}

func (f *fakeTeleCtx) Chat() *tele.Chat { return &tele.Chat{ID: 1} }

func (f *fakeTeleCtx) Get(key string) any { return f.values[key] }

func (f *fakeTeleCtx) Set(key string, val any) { f.values[key] = val }

func (f *fakeTeleCtx) Send(what any, _ ...any) error {
	f.sent = append(f.sent, what)
	return nil
}

type controllerSuite struct {
	suite.Suite

	mockCtrl    *gomock.Controller
	ctrl        *Controller
	userService *mocks.MockUserService
	bookService *mocks.MockBookService
	session     *mocks.MockSession
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(controllerSuite))
}

func (s *controllerSuite) SetupSuite() {
	s.mockCtrl = gomock.NewController(s.T())
}

func (s *controllerSuite) SetupTest() {
	s.userService = mocks.NewMockUserService(s.mockCtrl)
	s.bookService = mocks.NewMockBookService(s.mockCtrl)
	s.session = mocks.NewMockSession(s.mockCtrl)

	s.ctrl = NewController(&config.Config{}, s.userService, s.bookService, s.session)
}

func (s *controllerSuite) Test_RequireAuth_NoTokenSendsLoginPrompt() {
	c := newFakeTeleCtx()
	c.Set("session", model.Session{})

	_, ok := s.ctrl.requireAuth(utils.CreateCtxWithRqID(c), c)

	assert.False(s.T(), ok)
	assert.Equal(s.T(), []any{telebotConverter.LoginPrompt()}, c.sent)
}

func (s *controllerSuite) Test_RequireAuth_NoStoredSessionSendsLoginPrompt() {
	c := newFakeTeleCtx()

	s.session.EXPECT().
		GetSession(gomock.Any(), int64(1)).
		Return(model.Session{}, session.ErrNotFound)

	_, ok := s.ctrl.requireAuth(utils.CreateCtxWithRqID(c), c)

	assert.False(s.T(), ok)
	assert.Equal(s.T(), []any{telebotConverter.LoginPrompt()}, c.sent)
}

func (s *controllerSuite) Test_RequireAuth_TokenPasses() {
	c := newFakeTeleCtx()
	c.Set("session", model.Session{Token: "token"})

	chatSession, ok := s.ctrl.requireAuth(utils.CreateCtxWithRqID(c), c)

	assert.True(s.T(), ok)
	assert.Equal(s.T(), "token", chatSession.Token)
	assert.Empty(s.T(), c.sent)
}

func (s *controllerSuite) Test_InitLogin_StartsDialogWhenUnauthenticated() {
	c := newFakeTeleCtx()
	c.Set("session", model.Session{})

	s.session.EXPECT().
		SetSession(gomock.Any(), int64(1), model.Session{Action: model.ExpectingLoginEmail}).
		Return(nil)

	err := s.ctrl.InitLogin(c)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), []any{enterEmailMsg}, c.sent)
}

func (s *controllerSuite) Test_InitLogin_AuthenticatedGoesHome() {
	user := model.User{ID: "u1", Name: "name"}

	c := newFakeTeleCtx()
	c.Set("session", model.Session{Token: "token", User: &user})

	synced := make(chan struct{})
	s.userService.EXPECT().
		SyncUser(gomock.Any(), int64(1)).
		DoAndReturn(func(ctx context.Context, chatID int64) (model.User, error) {
			defer close(synced)
			return user, nil
		})

	s.session.EXPECT().
		SetSession(gomock.Any(), int64(1), model.Session{
			Token:       "token",
			User:        &user,
			Breadcrumbs: []model.Breadcrumb{homeCrumb()},
		}).
		Return(nil)

	s.bookService.EXPECT().
		GetBooksPage(gomock.Any(), "token", "u1", 0).
		Return(model.BooksPage{}, nil)

	err := s.ctrl.InitLogin(c)
	<-synced

	assert.Nil(s.T(), err)
	assert.Len(s.T(), c.sent, 2)
	assert.Equal(s.T(), alreadyLoggedInMsg, c.sent[0])

	home, ok := c.sent[1].(string)
	assert.True(s.T(), ok)
	assert.Contains(s.T(), home, "Привет, name!")
}

func (s *controllerSuite) Test_InitRegister_AuthenticatedGoesHome() {
	user := model.User{ID: "u1", Name: "name"}

	c := newFakeTeleCtx()
	c.Set("session", model.Session{Token: "token", User: &user})

	synced := make(chan struct{})
	s.userService.EXPECT().
		SyncUser(gomock.Any(), int64(1)).
		DoAndReturn(func(ctx context.Context, chatID int64) (model.User, error) {
			defer close(synced)
			return user, nil
		})

	s.session.EXPECT().
		SetSession(gomock.Any(), int64(1), gomock.Any()).
		Return(nil)

	s.bookService.EXPECT().
		GetBooksPage(gomock.Any(), "token", "u1", 0).
		Return(model.BooksPage{}, nil)

	err := s.ctrl.InitRegister(c)
	<-synced

	assert.Nil(s.T(), err)
	assert.NotEmpty(s.T(), c.sent)
	assert.Equal(s.T(), alreadyLoggedInMsg, c.sent[0])
}
