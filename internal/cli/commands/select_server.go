package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/officehub-dev/officehub/internal/cli/config"
	"github.com/officehub-dev/officehub/internal/cli/serverselect"
	"github.com/officehub-dev/officehub/internal/cli/userconfig"
)

// NewSelectServerCmd creates the select-server command
func NewSelectServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select-server [address-or-alias]",
		Short: "Select the server to use for commands",
		Long: `Select the server to use for commands.

If no param is provided, an interactive prompt will be shown.

Examples:
  $ officehub select-server                 # Interactive selection
  $ officehub select-server 10.0.0.5:8000  # Select by address
  $ officehub select-server production      # Select by alias`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var addressOrAlias string
			if len(args) > 0 {
				addressOrAlias = args[0]
			}
			return runSelectServer(addressOrAlias)
		},
	}

	return cmd
}

func runSelectServer(addressOrAlias string) error {
	cfg, err := config.LoadFromCurrentDir()
	if err != nil {
		return fmt.Errorf("failed to load config: %w\nRun 'officehub init' to create a configuration file", err)
	}

	var server *config.Server

	if addressOrAlias != "" {
		server, err = serverselect.GetServerByAddressOrAlias(cfg, addressOrAlias)
		if err != nil {
			return err
		}
	} else {
		server, err = serverselect.PromptServerSelection(cfg)
		if err != nil {
			return err
		}
	}

	if err := userconfig.SetSelectedServer(server.Address); err != nil {
		return fmt.Errorf("failed to save selected server: %w", err)
	}

	fmt.Printf("Selected server: %s (%s)\n", server.Alias, server.Address)
	return nil
}
