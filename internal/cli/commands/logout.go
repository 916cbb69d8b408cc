package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLogoutCmd creates the logout command
func NewLogoutCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout(serverAlias)
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from officehub.json")

	return cmd
}

func runLogout(serverAlias string) error {
	client, _, err := newAPIClient(serverAlias)
	if err != nil {
		return err
	}

	// Authentication is a stateless token, so logout is local: clearing
	// the credential store is the whole operation.
	if err := client.Logout(); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	fmt.Println("✓ Signed out.")
	return nil
}
