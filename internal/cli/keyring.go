package cli

import (
	"errors"

	"github.com/sadopc/moodwheel/internal/config"
)

// TokenSetCmd files the Telegram bot token in the OS keyring.
type TokenSetCmd struct {
	Token string `arg:"" help:"Telegram bot token."`
}

func (cmd *TokenSetCmd) Run(ctx *Context) error {
	if err := config.StoreTelegramToken(cmd.Token); err != nil {
		return err
	}
	ctx.printf("✓ Telegram token stored in OS keyring\n")
	return nil
}

type TokenCheckCmd struct{}

func (cmd *TokenCheckCmd) Run(ctx *Context) error {
	_, err := ctx.Config.TelegramToken()
	if errors.Is(err, config.ErrMissingTelegramToken) {
		return errors.New("no Telegram token found. Use 'moodwheel telegram set <token>' to store one")
	}
	if err != nil {
		return err
	}
	ctx.printf("✓ Telegram token available\n")
	return nil
}
