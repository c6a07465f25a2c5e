package userService

import (
	"context"
	"errors"
	"testing"

	"bookshelf_tgbot/config"
	"bookshelf_tgbot/internal/model"
	"bookshelf_tgbot/internal/platform"
	"bookshelf_tgbot/internal/repository"
	"bookshelf_tgbot/internal/service"
	"bookshelf_tgbot/internal/service/userService/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type userServiceSuite struct {
	suite.Suite

	mockCtrl    *gomock.Controller
	service     *UserService
	cfg         *config.Config
	platformAPI *mocks.MockPlatformAPI
	session     *mocks.MockSession
	cache       *mocks.MockCache
	repo        *mocks.MockRepository
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(userServiceSuite))
}

func (s *userServiceSuite) SetupSuite() {
	s.cfg = &config.Config{}
	s.mockCtrl = gomock.NewController(s.T())
}

func (s *userServiceSuite) SetupTest() {
	s.platformAPI = mocks.NewMockPlatformAPI(s.mockCtrl)
	s.session = mocks.NewMockSession(s.mockCtrl)
	s.cache = mocks.NewMockCache(s.mockCtrl)
	s.repo = mocks.NewMockRepository(s.mockCtrl)

	s.service = New(s.cfg, s.platformAPI, s.session, s.cache, s.repo)
}

func (s *userServiceSuite) Test_Login_Success() {
	var chatID int64 = 1
	ctx := context.Background()
	email := "test@gmail.com"
	password := "password"
	token := "token"
	user := model.User{ID: "u1", Name: "name", Email: email}

	s.platformAPI.EXPECT().
		Login(ctx, email, password).
		Return(token, nil)

	s.platformAPI.EXPECT().
		CurrentUser(ctx, token).
		Return(user, nil)

	s.session.EXPECT().
		SetSession(ctx, chatID, model.Session{Token: token, User: &user}).
		Return(nil)

	res, err := s.service.Login(ctx, chatID, email, password)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), user, res)
}

func (s *userServiceSuite) Test_Login_BadCredentials() {
	var chatID int64 = 1
	ctx := context.Background()
	loginErr := &platform.APIError{StatusCode: 400, Message: "Invalid credentials"}

	s.platformAPI.EXPECT().
		Login(ctx, "test@gmail.com", "wrong").
		Return("", loginErr)

	_, err := s.service.Login(ctx, chatID, "test@gmail.com", "wrong")

	assert.Equal(s.T(), loginErr, err)
}

func (s *userServiceSuite) Test_Login_ProfileSyncFailureStillStoresToken() {
	var chatID int64 = 1
	ctx := context.Background()
	token := "token"

	s.platformAPI.EXPECT().
		Login(ctx, "test@gmail.com", "password").
		Return(token, nil)

	s.platformAPI.EXPECT().
		CurrentUser(ctx, token).
		Return(model.User{}, errors.New("timeout"))

	s.session.EXPECT().
		SetSession(ctx, chatID, model.Session{Token: token}).
		Return(nil)

	_, err := s.service.Login(ctx, chatID, "test@gmail.com", "password")

	assert.Nil(s.T(), err)
}

func (s *userServiceSuite) Test_Register_Success() {
	var chatID int64 = 1
	ctx := context.Background()
	token := "token"
	user := model.User{ID: "u1", Name: "name", Email: "test@gmail.com"}

	s.platformAPI.EXPECT().
		Register(ctx, "name", "test@gmail.com", "password").
		Return(token, nil)

	s.platformAPI.EXPECT().
		CurrentUser(ctx, token).
		Return(user, nil)

	s.session.EXPECT().
		SetSession(ctx, chatID, model.Session{Token: token, User: &user}).
		Return(nil)

	res, err := s.service.Register(ctx, chatID, "name", "test@gmail.com", "password")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), user, res)
}

func (s *userServiceSuite) Test_SyncUser_UnauthorizedClearsSession() {
	var chatID int64 = 1
	ctx := context.Background()

	s.session.EXPECT().
		GetSession(ctx, chatID).
		Return(model.Session{Token: "expired"}, nil)

	s.platformAPI.EXPECT().
		CurrentUser(ctx, "expired").
		Return(model.User{}, platform.ErrUnauthorized)

	s.session.EXPECT().
		DeleteSession(ctx, chatID).
		Return(nil)

	_, err := s.service.SyncUser(ctx, chatID)

	assert.Equal(s.T(), platform.ErrUnauthorized, err)
}

func (s *userServiceSuite) Test_SyncUser_NoTokenUnauthorized() {
	var chatID int64 = 1
	ctx := context.Background()

	s.session.EXPECT().
		GetSession(ctx, chatID).
		Return(model.Session{}, nil)

	_, err := s.service.SyncUser(ctx, chatID)

	assert.Equal(s.T(), platform.ErrUnauthorized, err)
}

func (s *userServiceSuite) Test_SyncUser_Success() {
	var chatID int64 = 1
	ctx := context.Background()
	user := model.User{ID: "u1", Name: "name"}

	s.session.EXPECT().
		GetSession(ctx, chatID).
		Return(model.Session{Token: "token"}, nil)

	s.platformAPI.EXPECT().
		CurrentUser(ctx, "token").
		Return(user, nil)

	s.session.EXPECT().
		SetSession(ctx, chatID, model.Session{Token: "token", User: &user}).
		Return(nil)

	res, err := s.service.SyncUser(ctx, chatID)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), user, res)
}

func (s *userServiceSuite) Test_EditProfile_EmptyDraftNoRequest() {
	var chatID int64 = 1
	ctx := context.Background()

	s.session.EXPECT().
		GetSession(ctx, chatID).
		Return(model.Session{Token: "token"}, nil)

	_, err := s.service.EditProfile(ctx, chatID, model.ProfileDraft{})

	assert.Equal(s.T(), platform.ErrNoChanges, err)
}

func (s *userServiceSuite) Test_EditProfile_Success() {
	var chatID int64 = 1
	ctx := context.Background()
	draft := model.ProfileDraft{Name: "new name"}
	user := model.User{ID: "u1", Name: "new name"}

	s.session.EXPECT().
		GetSession(ctx, chatID).
		Return(model.Session{Token: "token", Action: model.ExpectingProfileName}, nil)

	s.platformAPI.EXPECT().
		UpdateProfile(ctx, "token", draft).
		Return(user, nil)

	s.session.EXPECT().
		SetSession(ctx, chatID, model.Session{Token: "token", User: &user, Action: model.DefaultAction}).
		Return(nil)

	res, err := s.service.EditProfile(ctx, chatID, draft)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), user, res)
}

func (s *userServiceSuite) Test_EditProfile_NoChangesFromPlatform() {
	var chatID int64 = 1
	ctx := context.Background()
	draft := model.ProfileDraft{Name: "same name"}

	s.session.EXPECT().
		GetSession(ctx, chatID).
		Return(model.Session{Token: "token"}, nil)

	s.platformAPI.EXPECT().
		UpdateProfile(ctx, "token", draft).
		Return(model.User{}, platform.ErrNoChanges)

	_, err := s.service.EditProfile(ctx, chatID, draft)

	assert.Equal(s.T(), platform.ErrNoChanges, err)
}

func (s *userServiceSuite) Test_Logout_InvalidatesCacheAndDeletesSession() {
	var chatID int64 = 1
	ctx := context.Background()
	user := model.User{ID: "u1"}

	s.session.EXPECT().
		GetSession(ctx, chatID).
		Return(model.Session{Token: "token", User: &user}, nil)

	s.cache.EXPECT().
		InvalidateBooks(ctx, "u1").
		Return(nil)

	s.session.EXPECT().
		DeleteSession(ctx, chatID).
		Return(nil)

	err := s.service.Logout(ctx, chatID)

	assert.Nil(s.T(), err)
}

func (s *userServiceSuite) Test_LinkDeviceEmail_Success() {
	var chatID int64 = 1
	ctx := context.Background()
	email := "user@kindle.com"

	s.repo.EXPECT().
		UpsertDeviceEmail(ctx, chatID, email).
		Return(nil)

	err := s.service.LinkDeviceEmail(ctx, chatID, email)

	assert.Nil(s.T(), err)
}

func (s *userServiceSuite) Test_LinkDeviceEmail_InvalidEmailErr() {
	var chatID int64 = 1
	ctx := context.Background()

	err := s.service.LinkDeviceEmail(ctx, chatID, "not-an-email")

	assert.Equal(s.T(), ErrInvalidEmail, err)
}

func (s *userServiceSuite) Test_DeviceEmail_NotFoundErr() {
	var chatID int64 = 1
	ctx := context.Background()

	s.repo.EXPECT().
		GetDeviceEmail(ctx, chatID).
		Return("", repository.ErrNoRows)

	_, err := s.service.DeviceEmail(ctx, chatID)

	assert.Equal(s.T(), service.ErrNotFound, err)
}
