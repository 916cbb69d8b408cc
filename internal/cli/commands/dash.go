package commands

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

// NewDashCmd creates the dash command
func NewDashCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "dash",
		Short: "Open the admin console in the browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDash(serverAlias)
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from officehub.json")

	return cmd
}

func runDash(serverAlias string) error {
	server, _, err := getSelectedServer(serverAlias)
	if err != nil {
		return err
	}

	dashboardURL := server.Address
	if !strings.Contains(dashboardURL, "://") {
		dashboardURL = "http://" + dashboardURL
	}

	fmt.Printf("Opening console for %s (%s)...\n", server.Alias, server.Address)
	fmt.Printf("URL: %s\n", dashboardURL)

	if err := openBrowser(dashboardURL); err != nil {
		return fmt.Errorf("failed to open browser: %w\nPlease visit: %s", err, dashboardURL)
	}

	return nil
}

// openBrowser opens the URL in the default browser
func openBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
