package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/Daddy-Tine/MHCreditCheck/cmd/mhcc/internal/config"
	"github.com/Daddy-Tine/MHCreditCheck/cmd/mhcc/internal/nav"
	"github.com/Daddy-Tine/MHCreditCheck/pkg/rbac"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the interactive navigation menu",
	Long: `Resolves your stored session and opens the navigation menu for your role.
Each role sees only its own screens: administrators get user/bank/audit
management, bank staff get data submission and inquiries, consumers their
report and disputes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if cfg.NonInteractive {
			return errors.New("menu is interactive; use `mhcc open <path>` in non-interactive mode")
		}

		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		session.Resolve(cmd.Context())

		if nav.Evaluate(session, rbac.DefaultLandingPath) == nav.DecisionRedirectLogin {
			return errors.New("not logged in; run `mhcc auth login` first")
		}

		shell := nav.NewShell(session, cfg.Provider.APIClient)
		return shell.Run(cmd.Context())
	},
}
