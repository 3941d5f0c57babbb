package system

import (
	"errors"
	"fmt"

	"github.com/leafyapp/leafy/internal/cli"
	"github.com/leafyapp/leafy/internal/keyring"
)

// KeySetCmd stores the assistant API key in the OS keyring.
type KeySetCmd struct {
	Key string `arg:"" help:"API key for the configured assistant provider."`
}

func (cmd *KeySetCmd) Run(ctx *cli.Context) error {
	if err := keyring.SetAPIKey(cmd.Key); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}
	fmt.Println("✓ API key stored in the OS keyring")
	return nil
}

// KeyStatusCmd reports whether an API key is available.
type KeyStatusCmd struct{}

func (cmd *KeyStatusCmd) Run(ctx *cli.Context) error {
	if _, err := keyring.GetAPIKey(); err == nil {
		fmt.Println("✓ API key is stored in the OS keyring")
		return nil
	} else if !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	if ctx.Config.APIKey() != "" {
		fmt.Println("ℹ API key comes from the config file or environment")
		return nil
	}
	fmt.Println("ℹ No API key configured")
	return nil
}

// KeyClearCmd removes the assistant API key from the OS keyring.
type KeyClearCmd struct{}

func (cmd *KeyClearCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no API key stored in the keyring")
		}
		return err
	}
	fmt.Println("✓ API key removed from the OS keyring")
	return nil
}
