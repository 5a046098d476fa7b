package auth

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Daddy-Tine/MHCreditCheck/cmd/mhcc/internal/config"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Exchange the refresh token for fresh credentials",
	Long: `Trades the stored refresh token for a new token pair.

Refreshing is always explicit: the client never refreshes behind your back,
and an expired access token simply sends you back to login.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		store, err := cfg.Provider.Store()
		if err != nil {
			return err
		}
		creds, err := store.LoadCredentials()
		if err != nil {
			return err
		}
		if creds == nil || creds.RefreshToken == "" {
			return errors.New("no stored refresh token; run `mhcc auth login`")
		}

		fresh, err := cfg.Provider.Client().RefreshCredentials(cmd.Context(), creds.RefreshToken)
		if err != nil {
			return fmt.Errorf("refresh failed: %w", err)
		}
		if err := store.SaveCredentials(fresh); err != nil {
			return fmt.Errorf("failed to save credentials: %w", err)
		}

		pterm.Success.Println("Credentials refreshed")
		return nil
	},
}
