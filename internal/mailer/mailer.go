package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bookshelf_tgbot/config"
	"bookshelf_tgbot/utils"

	"github.com/wneessen/go-mail"
)

type Mailer struct {
	cfg *config.Config
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendFile отправляет файл книги вложением на указанный адрес (send-to-device).
func (m *Mailer) SendFile(ctx context.Context, to string, subject string, filePath string) error {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "Mailer.SendFile"
	slog.Info("SendFile start", slog.String("rqID", rqID), slog.String("op", op), slog.String("to", to), slog.String("filePath", filePath))

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.Mail.Address); err != nil {
		return fmt.Errorf("set From address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set To address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, "")
	msg.AttachFile(filePath)

	c, err := mail.NewClient(
		m.cfg.Mail.Host,
		mail.WithPort(m.cfg.Mail.Port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(m.cfg.Mail.Address),
		mail.WithPassword(m.cfg.Mail.Password),
		mail.WithTimeout(120*time.Second),
	)
	if err != nil {
		return fmt.Errorf("create mail client: %w", err)
	}

	if err = c.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("error while dialing smtp: %w", err)
	}

	slog.Info("SendFile finished", slog.String("rqID", rqID), slog.String("op", op), slog.String("to", to))

	return nil
}
