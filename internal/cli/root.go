package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/officehub-dev/officehub/internal/cli/commands"
)

var version = "dev" // Will be set during build

var rootCmd = &cobra.Command{
	Use:   "officehub",
	Short: "OfficeHub - Office administration from the terminal",
	Long: `OfficeHub CLI - Attendance, leave, and employee administration.

Sign in once and the session is stored locally; every command talks to the
OfficeHub server with your stored credentials until you log out or the
session expires.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("officehub version %s\n", version)
		},
	})

	// Add all subcommands
	rootCmd.AddCommand(commands.NewInitCmd())
	rootCmd.AddCommand(commands.NewLoginCmd())
	rootCmd.AddCommand(commands.NewLogoutCmd())
	rootCmd.AddCommand(commands.NewWhoamiCmd())
	rootCmd.AddCommand(commands.NewSignInCmd())
	rootCmd.AddCommand(commands.NewSignOutCmd())
	rootCmd.AddCommand(commands.NewRecordsCmd())
	rootCmd.AddCommand(commands.NewMeetingRoomsCmd())
	rootCmd.AddCommand(commands.NewWorkersCmd())
	rootCmd.AddCommand(commands.NewLeaveCmd())
	rootCmd.AddCommand(commands.NewDashCmd())
	rootCmd.AddCommand(commands.NewSelectServerCmd())
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
