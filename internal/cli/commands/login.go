package commands

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/officehub-dev/officehub/internal/cli/api"
)

// NewLoginCmd creates the login command
func NewLoginCmd() *cobra.Command {
	var username, password, serverAlias string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with an OfficeHub server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(username, password, serverAlias)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username (or set OFFICEHUB_USERNAME)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set OFFICEHUB_PASSWORD, will prompt if not provided)")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from officehub.json")

	return cmd
}

func runLogin(username, password, serverAlias string) error {
	// Check for environment variables (useful for CI/CD)
	if username == "" {
		username = os.Getenv("OFFICEHUB_USERNAME")
	}
	if password == "" {
		password = os.Getenv("OFFICEHUB_PASSWORD")
	}

	if username == "" {
		return fmt.Errorf("username is required (use --username flag or OFFICEHUB_USERNAME env var)")
	}

	// Prompt for password if not provided via flag or env var
	if password == "" {
		if term.IsTerminal(int(syscall.Stdin)) {
			fmt.Print("Password: ")
			bytePassword, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = string(bytePassword)
			fmt.Println()
		} else {
			return fmt.Errorf("password is required in non-interactive mode (use --password flag or OFFICEHUB_PASSWORD env var)")
		}
	}

	client, sessions, err := newAPIClient(serverAlias)
	if err != nil {
		return err
	}

	result, err := client.Login(api.LoginRequest{Username: username, Password: password})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if !result.OK() {
		if result.Msg != "" {
			return fmt.Errorf("login failed: %s", result.Msg)
		}
		return fmt.Errorf("login failed")
	}

	cred, ok := sessions.CurrentSession()
	if !ok {
		return fmt.Errorf("login succeeded but no session was stored")
	}

	fmt.Println("✓ Login successful!")
	fmt.Printf("  User: %s (%s)\n", cred.Profile.RealName, cred.Profile.Username)
	fmt.Printf("  Position: %s\n", cred.Profile.Position)

	return nil
}
