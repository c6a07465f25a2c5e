package telegram

import (
	"log/slog"

	"bookshelf_tgbot/internal/converter/telebotConverter"
	"bookshelf_tgbot/internal/model"
	"bookshelf_tgbot/utils"

	tele "gopkg.in/telebot.v4"
)

func (ctrl *Controller) Start(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	if chatSession.Authenticated() {
		return ctrl.renderHome(ctx, c, chatSession)
	}

	return c.Send(welcomeMsg)
}

func (ctrl *Controller) Help(c tele.Context) error {
	return c.Send(helpMsg)
}

// InitLogin — обратный гард: авторизованного пользователя логин-экран
// отправляет сразу в приложение.
func (ctrl *Controller) InitLogin(c tele.Context) error {
	op := "Controller.InitLogin"
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	if chatSession.Authenticated() {
		_ = c.Send(alreadyLoggedInMsg)
		return ctrl.renderHome(ctx, c, chatSession)
	}

	chatSession.Action = model.ExpectingLoginEmail
	if err = ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		slog.Error("got error from session.SetSession", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(enterEmailMsg)
}

func (ctrl *Controller) ProcessLoginEmail(c tele.Context) error {
	op := "Controller.ProcessLoginEmail"
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	chatSession.LoginEmail = c.Message().Text
	chatSession.Action = model.ExpectingLoginPassword
	if err = ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		slog.Error("got error from session.SetSession", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(enterPasswordMsg)
}

func (ctrl *Controller) ProcessLoginPassword(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	password := c.Message().Text
	// пароль в чате не оставляем
	_ = c.Delete()

	user, err := ctrl.userService.Login(ctx, c.Chat().ID, chatSession.LoginEmail, password)
	if err != nil {
		// ошибка аутентификации показывается у формы, без ретраев
		return c.Send(loginFailedMsg)
	}

	if user.Name != "" {
		_ = ctrl.sendAutoDeleteMsg(c, "С возвращением, "+user.Name+"!")
	}

	newSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}
	c.Set("session", newSession)

	return ctrl.renderHome(ctx, c, newSession)
}

func (ctrl *Controller) InitRegister(c tele.Context) error {
	op := "Controller.InitRegister"
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	if chatSession.Authenticated() {
		_ = c.Send(alreadyLoggedInMsg)
		return ctrl.renderHome(ctx, c, chatSession)
	}

	chatSession.Action = model.ExpectingRegisterName
	if err = ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		slog.Error("got error from session.SetSession", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(enterNameMsg)
}

func (ctrl *Controller) ProcessRegisterName(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	chatSession.RegisterName = c.Message().Text
	chatSession.Action = model.ExpectingRegisterEmail
	if err = ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(enterEmailMsg)
}

func (ctrl *Controller) ProcessRegisterEmail(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	chatSession.RegisterEmail = c.Message().Text
	chatSession.Action = model.ExpectingRegisterPassword
	if err = ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(enterPasswordMsg)
}

func (ctrl *Controller) ProcessRegisterPassword(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	password := c.Message().Text
	_ = c.Delete()

	user, err := ctrl.userService.Register(ctx, c.Chat().ID, chatSession.RegisterName, chatSession.RegisterEmail, password)
	if err != nil {
		return c.Send(registerFailedMsg)
	}

	if user.Name != "" {
		_ = ctrl.sendAutoDeleteMsg(c, "Добро пожаловать, "+user.Name+"!")
	}

	newSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}
	c.Set("session", newSession)

	return ctrl.renderHome(ctx, c, newSession)
}

func (ctrl *Controller) Logout(c tele.Context) error {
	op := "Controller.Logout"
	ctx := utils.CreateCtxWithRqID(c)

	if err := ctrl.userService.Logout(ctx, c.Chat().ID); err != nil {
		slog.Error("got error from userService.Logout", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	c.Set("session", model.Session{})

	if err := c.Send(loggedOutMsg); err != nil {
		return err
	}

	return c.Send(telebotConverter.LoginPrompt())
}
