package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd is the parent command for authentication operations.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication",
	Long:  `Commands for signing in to the bureau, inspecting the session, and managing accounts.`,
}

func init() {
	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(logoutCmd)
	AuthCmd.AddCommand(statusCmd)
	AuthCmd.AddCommand(registerCmd)
	AuthCmd.AddCommand(refreshCmd)
}
