package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	authcmd "github.com/Daddy-Tine/MHCreditCheck/cmd/mhcc/cmd/auth"
	"github.com/Daddy-Tine/MHCreditCheck/cmd/mhcc/internal/client"
	"github.com/Daddy-Tine/MHCreditCheck/cmd/mhcc/internal/config"
)

var (
	serverURL      string
	nonInteractive bool
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "mhcc",
	Short: "Credit Check Marshall Islands - bureau back-office client",
	Long: `mhcc is the command-line client for the Marshall Islands credit bureau
back office. It signs you in against the bureau API and shows the screens
your role is entitled to: administrators manage users and banks, bank staff
submit data and run inquiries, consumers review their own reports.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		env, err := config.LoadEnv(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to read environment: %w", err)
		}

		// Flags win over environment, environment over defaults.
		if !cmd.Flags().Changed("server") && env.ServerURL != "" {
			serverURL = env.ServerURL
		}
		if !cmd.Flags().Changed("non-interactive") && env.NonInteractive {
			nonInteractive = true
		}
		if !cmd.Flags().Changed("verbose") && env.Verbose {
			verbose = true
		}

		logger := zerolog.Nop()
		if verbose {
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(zerolog.DebugLevel).
				With().Timestamp().Logger()
		}

		cfg := &config.GlobalConfig{
			ServerURL:      serverURL,
			NonInteractive: nonInteractive,
			Verbose:        verbose,
			Provider:       client.NewProvider(serverURL, logger),
		}
		cmd.SetContext(config.InjectConfig(cmd.Context(), cfg))
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8000", "Bureau API server URL (also MHCC_SERVER_URL)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts (also MHCC_NON_INTERACTIVE=1)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging of bureau requests (also MHCC_VERBOSE=1)")
	rootCmd.AddCommand(authcmd.AuthCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(openCmd)
}
