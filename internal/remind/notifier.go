package remind

import (
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier delivers a digest.
type Notifier interface {
	Notify(ctx context.Context, d Digest) error
}

// WriterNotifier prints digests to a writer.
type WriterNotifier struct {
	W io.Writer
}

// Notify writes the digest text.
func (n WriterNotifier) Notify(_ context.Context, d Digest) error {
	if _, err := io.WriteString(n.W, d.Text()); err != nil {
		return fmt.Errorf("write digest: %w", err)
	}
	return nil
}

// telegramLimit is the maximum message length accepted by the Bot API.
const telegramLimit = 4096

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier sends digests to a Telegram chat.
type TelegramNotifier struct {
	bot    messageSender
	chatID int64
}

// NewTelegramNotifier connects to the Bot API with token. It fails if the
// token is rejected.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connect telegram bot: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

// Notify sends the digest text, truncated to Telegram's message limit.
func (n *TelegramNotifier) Notify(_ context.Context, d Digest) error {
	msg := tgbotapi.NewMessage(n.chatID, truncate(d.Text(), telegramLimit))
	msg.DisableWebPagePreview = true
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram digest: %w", err)
	}
	return nil
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-1]) + "…"
}
