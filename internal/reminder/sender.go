package reminder

import (
	"errors"
	"fmt"
	"io"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/sadopc/moodwheel/internal/logger"
)

// Notification is one delivered reminder.
type Notification struct {
	ID    string
	Title string
	Body  string
	At    time.Time
}

func (n Notification) Text() string {
	return fmt.Sprintf("%s\n%s", n.Title, n.Body)
}

type Sender interface {
	Send(n Notification) error
}

// SenderFunc adapts a plain function to Sender.
type SenderFunc func(n Notification) error

func (f SenderFunc) Send(n Notification) error { return f(n) }

// Multi delivers to every sender and joins their errors.
func Multi(senders ...Sender) Sender {
	return SenderFunc(func(n Notification) error {
		var errs []error
		for _, s := range senders {
			if err := s.Send(n); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}

// LogSender writes reminders to the log and optionally rings the terminal
// bell on Out.
type LogSender struct {
	Bell bool
	Out  io.Writer
}

func (l LogSender) Send(n Notification) error {
	logger.Info(n.Title, "body", n.Body, "id", n.ID)
	if l.Out == nil {
		return nil
	}
	text := n.Text() + "\n"
	if l.Bell {
		text = "\a" + text
	}
	_, err := io.WriteString(l.Out, text)
	return err
}

// chattable is the part of tgbotapi.BotAPI the sender uses.
type chattable interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramSender posts reminders to a single chat.
type TelegramSender struct {
	bot    chattable
	chatID int64
}

// NewTelegramSender authenticates against the Bot API with token.
func NewTelegramSender(token string, chatID int64) (*TelegramSender, error) {
	if chatID == 0 {
		return nil, errors.New("telegram chat id is not set")
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	logger.Info("Telegram sender ready", "bot", bot.Self.UserName)
	return &TelegramSender{bot: bot, chatID: chatID}, nil
}

func (t *TelegramSender) Send(n Notification) error {
	msg := tgbotapi.NewMessage(t.chatID, fmt.Sprintf("🎡 <b>%s</b>\n\n%s", n.Title, n.Body))
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram reminder: %w", err)
	}
	return nil
}
