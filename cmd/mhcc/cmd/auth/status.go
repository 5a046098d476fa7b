package auth

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Daddy-Tine/MHCreditCheck/cmd/mhcc/internal/config"
	"github.com/Daddy-Tine/MHCreditCheck/pkg/rbac"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		session.Resolve(cmd.Context())

		identity := session.CurrentIdentity()
		if identity == nil {
			pterm.Warning.Println("Not logged in. Run `mhcc auth login` to sign in.")
			return nil
		}

		pterm.DefaultSection.Println("Authentication Status")
		pterm.Info.Printf("Signed in as: %s <%s>\n", identity.FullName, identity.Email)
		pterm.Info.Printf("Role: %s\n", strings.ReplaceAll(identity.Role.String(), "_", " "))
		if identity.BankID != nil {
			pterm.Info.Printf("Bank ID: %d\n", *identity.BankID)
		}
		if !identity.IsVerified {
			pterm.Warning.Println("Email not verified yet.")
		}

		entries := rbac.CapabilitiesFor(identity.Role)
		pterm.DefaultSection.Println("Available Screens")
		if len(entries) == 0 {
			pterm.Info.Println("This role has no navigable screens in this client.")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SCREEN\tPATH")
		for _, entry := range entries {
			fmt.Fprintf(w, "%s\t%s\n", entry.Label, entry.Path)
		}
		return w.Flush()
	},
}
