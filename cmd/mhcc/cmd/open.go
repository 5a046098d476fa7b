package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/Daddy-Tine/MHCreditCheck/cmd/mhcc/internal/config"
	"github.com/Daddy-Tine/MHCreditCheck/cmd/mhcc/internal/nav"
)

var openReportID int

var openCmd = &cobra.Command{
	Use:   "open <path>",
	Short: "Open a single screen by route path",
	Long: `Performs one guarded navigation to a route path and renders the screen,
e.g. ` + "`mhcc open /admin/users`" + `. Unknown paths land on the dashboard;
unauthenticated navigation is sent to login.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		session.Resolve(cmd.Context())

		if nav.Evaluate(session, args[0]) == nav.DecisionRedirectLogin {
			return errors.New("not logged in; run `mhcc auth login` first")
		}

		shell := nav.NewShell(session, cfg.Provider.APIClient)
		shell.ReportID = openReportID
		shell.NonInteractive = cfg.NonInteractive
		return shell.Open(cmd.Context(), args[0])
	},
}

func init() {
	openCmd.Flags().IntVar(&openReportID, "report-id", 0, "Credit report ID for /consumer/report")
}
