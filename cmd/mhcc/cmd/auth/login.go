package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Daddy-Tine/MHCreditCheck/cmd/mhcc/internal/config"
	"github.com/Daddy-Tine/MHCreditCheck/cmd/mhcc/internal/nav"
	"github.com/Daddy-Tine/MHCreditCheck/pkg/sdk"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the bureau",
	Long: `Signs in against the bureau API with your email and password.

The access and refresh tokens are stored under ~/.mhcc and reused on the
next invocation until they expire or you log out. The password is read from
a masked prompt unless --password is given (intended for scripting only).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		session.Resolve(cmd.Context())

		// Same rule as the login screen: an authenticated user is sent to
		// the landing route instead of a second sign-in.
		if nav.Evaluate(session, nav.LoginPath) == nav.DecisionRedirectHome {
			identity := session.CurrentIdentity()
			pterm.Info.Printf("Already signed in as %s <%s>. Run `mhcc auth logout` first to switch accounts.\n",
				identity.FullName, identity.Email)
			return nil
		}

		email := strings.TrimSpace(loginEmail)
		if email == "" {
			if cfg.NonInteractive {
				return errors.New("--email is required in non-interactive mode")
			}
			email, err = pterm.DefaultInteractiveTextInput.WithDefaultText("Email").Show()
			if err != nil {
				return err
			}
			email = strings.TrimSpace(email)
		}

		password := loginPassword
		if password == "" {
			if cfg.NonInteractive {
				return errors.New("--password is required in non-interactive mode")
			}
			password, err = pterm.DefaultInteractiveTextInput.
				WithDefaultText("Password").
				WithMask("*").
				Show()
			if err != nil {
				return err
			}
		}

		identity, err := session.Login(cmd.Context(), email, password)
		if err != nil {
			if sdk.IsKind(err, sdk.ErrInvalidCredentials) {
				return errors.New("incorrect email or password")
			}
			return fmt.Errorf("login failed: %w", err)
		}

		fmt.Println("------------------------------------------------------------")
		pterm.Success.Println("Login successful!")
		pterm.Info.Printf("Signed in as: %s <%s> (%s)\n", identity.FullName, identity.Email, identity.Role)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (prompted when omitted)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted with masking when omitted)")
}
