package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/officehub-dev/officehub/internal/cli/guard"
)

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami(serverAlias)
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from officehub.json")

	return cmd
}

func runWhoami(serverAlias string) error {
	_, sessions, err := newAPIClient(serverAlias)
	if err != nil {
		return err
	}

	if err := requireScreen(sessions, guard.ScreenDashboard); err != nil {
		return err
	}

	cred, _ := sessions.CurrentSession()
	fmt.Printf("User: %s\n", cred.Profile.Username)
	fmt.Printf("Name: %s\n", cred.Profile.RealName)
	fmt.Printf("Position: %s\n", cred.Profile.Position)

	return nil
}
