package cli

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/sadopc/moodwheel/internal/config"
	"github.com/sadopc/moodwheel/internal/mood"
	"github.com/sadopc/moodwheel/internal/reminder"
	"github.com/sadopc/moodwheel/internal/store"
)

// Context is handed to every command's Run method.
type Context struct {
	Config *config.Config
	Store  *store.Store
	Out    io.Writer
	Now    func() time.Time
	Rand   *rand.Rand
}

func NewContext(cfg *config.Config, s *store.Store) *Context {
	now := time.Now()
	return &Context{
		Config: cfg,
		Store:  s,
		Out:    os.Stdout,
		Now:    time.Now,
		Rand:   rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(os.Getpid()))),
	}
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

// Sender builds the reminder sender selected in the config.
func (c *Context) Sender() (reminder.Sender, error) {
	switch c.Config.Reminder.Sender {
	case config.SenderTelegram:
		token, err := c.Config.TelegramToken()
		if err != nil {
			return nil, err
		}
		return reminder.NewTelegramSender(token, c.Config.Reminder.Telegram.ChatID)
	default:
		return reminder.LogSender{Bell: c.Config.Reminder.Bell, Out: c.Out}, nil
	}
}

// findMood resolves a catalog mood by name, ignoring case when there is no
// exact match.
func (c *Context) findMood(name string) (mood.Mood, error) {
	m, err := c.Store.FindMood(name)
	if err == nil {
		return m, nil
	}
	moods, lerr := c.Store.LoadMoods()
	if lerr != nil {
		return mood.Mood{}, lerr
	}
	for _, m := range moods {
		if strings.EqualFold(m.Name, name) {
			return m, nil
		}
	}
	return mood.Mood{}, err
}

func formatEntry(e mood.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s %-10s", e.Date.Local().Format("Mon Jan 02 15:04"), e.Mood.Icon, e.Mood.Name)
	if len(e.Habits) > 0 {
		fmt.Fprintf(&b, "  [%s]", strings.Join(e.Habits, ", "))
	}
	if e.HasNote() {
		fmt.Fprintf(&b, "  %q", e.Note)
	}
	return b.String()
}
