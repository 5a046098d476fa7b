package auth

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Daddy-Tine/MHCreditCheck/cmd/mhcc/internal/config"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out from the bureau",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}

		// No resolution first: logout is valid from any state and must not
		// depend on the bureau being reachable.
		session.Logout()
		pterm.Success.Println("Logged out successfully")
		return nil
	},
}
