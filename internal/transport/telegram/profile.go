package telegram

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"bookshelf_tgbot/internal/converter/telebotConverter"
	"bookshelf_tgbot/internal/model"
	"bookshelf_tgbot/internal/platform"
	"bookshelf_tgbot/internal/service"
	"bookshelf_tgbot/internal/service/userService"
	"bookshelf_tgbot/utils"

	tele "gopkg.in/telebot.v4"
)

func (ctrl *Controller) ProfileScreen(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	return ctrl.renderProfile(ctx, c, chatSession, false)
}

func (ctrl *Controller) renderProfile(ctx context.Context, c tele.Context, chatSession model.Session, edit bool) error {
	op := "Controller.renderProfile"
	rqID := utils.GetRequestIDFromCtx(ctx)

	user, err := ctrl.userService.SyncUser(ctx, c.Chat().ID)
	if err != nil {
		slog.Error("got error from userService.SyncUser", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.handleServiceErr(c, err)
	}

	deviceEmail, err := ctrl.userService.DeviceEmail(ctx, c.Chat().ID)
	if err != nil && !errors.Is(err, service.ErrNotFound) {
		slog.Warn("failed to read device email", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}

	crumbs := []model.Breadcrumb{homeCrumb(), {Label: "Профиль", Path: "/profile"}}
	ctrl.saveBreadcrumbs(ctx, c.Chat().ID, &chatSession, crumbs...)

	text, markup := telebotConverter.ProfileScreen(user, deviceEmail, crumbs)
	if edit {
		return c.Edit(text, markup)
	}
	return c.Send(text, markup)
}

// --- правка полей профиля: каждое поле отдельным PATCH ---

func (ctrl *Controller) initProfileField(c tele.Context, action model.Action, prompt string) error {
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	chatSession.Action = action
	if err := ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(prompt)
}

func (ctrl *Controller) InitEditName(c tele.Context) error {
	return ctrl.initProfileField(c, model.ExpectingProfileName, enterNewNameMsg)
}

func (ctrl *Controller) InitEditBio(c tele.Context) error {
	return ctrl.initProfileField(c, model.ExpectingProfileBio, enterNewBioMsg)
}

func (ctrl *Controller) InitEditPhoto(c tele.Context) error {
	return ctrl.initProfileField(c, model.ExpectingProfilePhoto, sendNewPhotoMsg)
}

// submitProfile отправляет PATCH. Ответ "без изменений" не считается ошибкой:
// экран просто перерисовывается молча.
func (ctrl *Controller) submitProfile(ctx context.Context, c tele.Context, draft model.ProfileDraft) error {
	op := "Controller.submitProfile"
	rqID := utils.GetRequestIDFromCtx(ctx)

	_, err := ctrl.userService.EditProfile(ctx, c.Chat().ID, draft)
	if err != nil && !errors.Is(err, platform.ErrNoChanges) {
		slog.Error("got error from userService.EditProfile", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.handleServiceErr(c, err)
	}

	if err == nil {
		_ = ctrl.sendAutoDeleteMsg(c, profileUpdatedMsg)
	}

	chatSession, getErr := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if getErr != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return ctrl.renderProfile(ctx, c, chatSession, false)
}

func (ctrl *Controller) ProcessProfileName(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	if _, ok := ctrl.requireAuth(ctx, c); !ok {
		return nil
	}

	return ctrl.submitProfile(ctx, c, model.ProfileDraft{Name: strings.TrimSpace(c.Message().Text)})
}

func (ctrl *Controller) ProcessProfileBio(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	if _, ok := ctrl.requireAuth(ctx, c); !ok {
		return nil
	}

	return ctrl.submitProfile(ctx, c, model.ProfileDraft{Bio: strings.TrimSpace(c.Message().Text)})
}

func (ctrl *Controller) ProcessProfilePhoto(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	if _, ok := ctrl.requireAuth(ctx, c); !ok {
		return nil
	}

	ref, errMsg := ctrl.acceptUpload(ctx, c, coverUpload)
	if errMsg != "" {
		return c.Send(errMsg)
	}

	return ctrl.submitProfile(ctx, c, model.ProfileDraft{ProfilePicture: ref})
}

// --- email устройства ---

func (ctrl *Controller) InitLinkEmail(c tele.Context) error {
	return ctrl.initProfileField(c, model.ExpectingDeviceEmail, enterDeviceEmailMsg)
}

func (ctrl *Controller) ProcessDeviceEmail(c tele.Context) error {
	op := "Controller.ProcessDeviceEmail"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	email := strings.TrimSpace(c.Message().Text)

	if err := ctrl.userService.LinkDeviceEmail(ctx, c.Chat().ID, email); err != nil {
		if errors.Is(err, userService.ErrInvalidEmail) {
			return c.Send(invalidEmailMsg)
		}
		slog.Error("got error from userService.LinkDeviceEmail", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	chatSession.Action = model.DefaultAction
	if err := ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		slog.Error("got error from session.SetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}

	_ = ctrl.sendAutoDeleteMsg(c, emailLinkedMsg)

	return ctrl.renderProfile(ctx, c, chatSession, false)
}

func (ctrl *Controller) UnlinkEmail(c tele.Context) error {
	op := "Controller.UnlinkEmail"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	chatSession, ok := ctrl.requireAuth(ctx, c)
	if !ok {
		return nil
	}

	if err := ctrl.userService.UnlinkDeviceEmail(ctx, c.Chat().ID); err != nil {
		slog.Error("got error from userService.UnlinkDeviceEmail", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	_ = ctrl.sendAutoDeleteMsg(c, emailDeletedMsg)

	return ctrl.renderProfile(ctx, c, chatSession, true)
}

// EmailCommand показывает текущий email устройства и запускает привязку,
// если его нет.
func (ctrl *Controller) EmailCommand(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	if _, ok := ctrl.requireAuth(ctx, c); !ok {
		return nil
	}

	email, err := ctrl.userService.DeviceEmail(ctx, c.Chat().ID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return ctrl.InitLinkEmail(c)
		}
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send("Email устройства: " + email + "\nУдалить его можно с экрана /profile.")
}
