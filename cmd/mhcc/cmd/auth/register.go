package auth

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Daddy-Tine/MHCreditCheck/cmd/mhcc/internal/config"
	"github.com/Daddy-Tine/MHCreditCheck/pkg/sdk"
)

var (
	registerEmail    string
	registerPassword string
	registerFullName string
	registerRole     string
	registerBankID   int
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new bureau account",
	Long: `Registers a new account with the bureau. Registration does not sign you
in; the bureau sends a verification email and you log in afterwards.

Bank roles (BANK_MANAGER, BANK_USER) should pass --bank-id to link the
account to their institution.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		if registerEmail == "" || registerPassword == "" || registerFullName == "" {
			return errors.New("--email, --password and --full-name are required")
		}
		role, ok := sdk.ParseRole(registerRole)
		if !ok {
			return fmt.Errorf("unknown role %q", registerRole)
		}

		input := sdk.RegisterInput{
			Email:    registerEmail,
			Password: registerPassword,
			FullName: registerFullName,
			Role:     role,
		}
		if registerBankID != 0 {
			input.BankID = &registerBankID
		}

		identity, err := cfg.Provider.Client().Register(cmd.Context(), input)
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		pterm.Success.Printf("Registered %s <%s> as %s. Check your email to verify the account, then run `mhcc auth login`.\n",
			identity.FullName, identity.Email, identity.Role)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password")
	registerCmd.Flags().StringVar(&registerFullName, "full-name", "", "Display name")
	registerCmd.Flags().StringVar(&registerRole, "role", string(sdk.RoleConsumer), "Account role (ADMIN, BANK_MANAGER, BANK_USER, DATA_PROVIDER, AUDITOR, CONSUMER)")
	registerCmd.Flags().IntVar(&registerBankID, "bank-id", 0, "Bank ID for bank-linked roles")
}
