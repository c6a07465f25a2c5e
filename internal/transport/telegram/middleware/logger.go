package middleware

import (
	"log/slog"
	"time"

	tele "gopkg.in/telebot.v4"
)

// Logger логирует каждый апдейт: кто, что и сколько обрабатывали.
func Logger() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()

			attrs := []any{
				slog.Int64("chatID", c.Chat().ID),
			}

			if c.Message() != nil && c.Message().Text != "" {
				attrs = append(attrs, slog.String("text", c.Message().Text))
			}

			if c.Callback() != nil {
				attrs = append(attrs, slog.String("callback", c.Callback().Data))
			}

			err := next(c)

			attrs = append(attrs, slog.Duration("elapsed", time.Since(start)))
			if err != nil {
				attrs = append(attrs, slog.String("err", err.Error()))
				slog.Error("update processed with error", attrs...)
				return err
			}

			slog.Info("update processed", attrs...)
			return nil
		}
	}
}
