package userService

import (
	"context"
	"errors"
	"log/slog"

	"bookshelf_tgbot/config"
	"bookshelf_tgbot/data/session"
	"bookshelf_tgbot/internal/lib/files"
	"bookshelf_tgbot/internal/model"
	"bookshelf_tgbot/internal/platform"
	"bookshelf_tgbot/internal/repository"
	"bookshelf_tgbot/internal/service"
	"bookshelf_tgbot/utils"

	"github.com/go-playground/validator/v10"
)

type PlatformAPI interface {
	Login(ctx context.Context, email, password string) (accessToken string, err error)
	Register(ctx context.Context, name, email, password string) (accessToken string, err error)
	CurrentUser(ctx context.Context, token string) (model.User, error)
	UpdateProfile(ctx context.Context, token string, draft model.ProfileDraft) (model.User, error)
}

type Session interface {
	GetSession(ctx context.Context, chatID int64) (model.Session, error)
	SetSession(ctx context.Context, chatID int64, session model.Session) error
	DeleteSession(ctx context.Context, chatID int64) error
}

type Cache interface {
	InvalidateBooks(ctx context.Context, userID string) error
}

type Repository interface {
	GetDeviceEmail(ctx context.Context, chatId int64) (string, error)
	UpsertDeviceEmail(ctx context.Context, chatId int64, email string) error
	DeleteDeviceEmail(ctx context.Context, chatId int64) error
}

type UserService struct {
	cfg      *config.Config
	platform PlatformAPI
	session  Session
	cache    Cache
	repo     Repository
	validate *validator.Validate
}

func New(cfg *config.Config, platformAPI PlatformAPI, sess Session, userCache Cache, repo Repository) *UserService {
	return &UserService{
		cfg:      cfg,
		platform: platformAPI,
		session:  sess,
		cache:    userCache,
		repo:     repo,
		validate: validator.New(),
	}
}

// Login обменивает креды на токен, кладет его в сессию чата и подтягивает
// профиль. Ошибка синка профиля логин не отменяет — профиль доедет фоновым
// синком на следующем экране.
func (s *UserService) Login(ctx context.Context, chatID int64, email, password string) (model.User, error) {
	op := "UserService.Login"
	rqID := utils.GetRequestIDFromCtx(ctx)

	token, err := s.platform.Login(ctx, email, password)
	if err != nil {
		return model.User{}, err
	}

	newSession := model.Session{Token: token}

	user, err := s.platform.CurrentUser(ctx, token)
	if err != nil {
		slog.Warn("profile sync after login failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	} else {
		newSession.User = &user
	}

	if err = s.session.SetSession(ctx, chatID, newSession); err != nil {
		return model.User{}, err
	}

	return user, nil
}

func (s *UserService) Register(ctx context.Context, chatID int64, name, email, password string) (model.User, error) {
	op := "UserService.Register"
	rqID := utils.GetRequestIDFromCtx(ctx)

	token, err := s.platform.Register(ctx, name, email, password)
	if err != nil {
		return model.User{}, err
	}

	newSession := model.Session{Token: token}

	user, err := s.platform.CurrentUser(ctx, token)
	if err != nil {
		slog.Warn("profile sync after register failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	} else {
		newSession.User = &user
	}

	if err = s.session.SetSession(ctx, chatID, newSession); err != nil {
		return model.User{}, err
	}

	return user, nil
}

// SyncUser обновляет профиль в сессии из платформы. На 401 сессия чистится,
// следующий экран уткнется в гард и предложит логин.
func (s *UserService) SyncUser(ctx context.Context, chatID int64) (model.User, error) {
	sess, err := s.session.GetSession(ctx, chatID)
	if err != nil {
		return model.User{}, err
	}

	if !sess.Authenticated() {
		return model.User{}, platform.ErrUnauthorized
	}

	user, err := s.platform.CurrentUser(ctx, sess.Token)
	if err != nil {
		if errors.Is(err, platform.ErrUnauthorized) {
			_ = s.session.DeleteSession(ctx, chatID)
		}
		return model.User{}, err
	}

	sess.User = &user
	if err = s.session.SetSession(ctx, chatID, sess); err != nil {
		return model.User{}, err
	}

	return user, nil
}

// EditProfile отправляет PATCH профиля. platform.ErrNoChanges возвращается
// как есть: для вызывающего это no-op, без уведомления об ошибке.
func (s *UserService) EditProfile(ctx context.Context, chatID int64, draft model.ProfileDraft) (model.User, error) {
	sess, err := s.session.GetSession(ctx, chatID)
	if err != nil {
		return model.User{}, err
	}

	if !sess.Authenticated() {
		return model.User{}, platform.ErrUnauthorized
	}

	if draft.Empty() {
		return model.User{}, platform.ErrNoChanges
	}

	user, err := s.platform.UpdateProfile(ctx, sess.Token, draft)
	if err != nil {
		return model.User{}, err
	}

	sess.User = &user
	sess.Action = model.DefaultAction
	if err = s.session.SetSession(ctx, chatID, sess); err != nil {
		return model.User{}, err
	}

	s.cleanupDraftFile(draft)

	return user, nil
}

func (s *UserService) Logout(ctx context.Context, chatID int64) error {
	sess, err := s.session.GetSession(ctx, chatID)
	if err != nil && !errors.Is(err, session.ErrNotFound) {
		return err
	}

	if userID := sess.UserID(); userID != "" {
		if invErr := s.cache.InvalidateBooks(ctx, userID); invErr != nil {
			slog.Warn("books cache invalidation on logout failed", slog.String("err", invErr.Error()))
		}
	}

	return s.session.DeleteSession(ctx, chatID)
}

func (s *UserService) LinkDeviceEmail(ctx context.Context, chatID int64, email string) error {
	if err := s.validate.Var(email, "required,email"); err != nil {
		return ErrInvalidEmail
	}

	return s.repo.UpsertDeviceEmail(ctx, chatID, email)
}

func (s *UserService) UnlinkDeviceEmail(ctx context.Context, chatID int64) error {
	return s.repo.DeleteDeviceEmail(ctx, chatID)
}

func (s *UserService) DeviceEmail(ctx context.Context, chatID int64) (string, error) {
	email, err := s.repo.GetDeviceEmail(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return "", service.ErrNotFound
		}
		return "", err
	}

	return email, nil
}

func (s *UserService) cleanupDraftFile(draft model.ProfileDraft) {
	if draft.ProfilePicture == nil || draft.ProfilePicture.Path == "" {
		return
	}
	if err := files.DeleteFile(draft.ProfilePicture.Path); err != nil {
		slog.Warn("failed to delete profile picture draft", slog.String("path", draft.ProfilePicture.Path), slog.String("err", err.Error()))
	}
}
