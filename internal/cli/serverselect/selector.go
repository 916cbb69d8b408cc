package serverselect

import (
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/officehub-dev/officehub/internal/cli/config"
	"github.com/officehub-dev/officehub/internal/cli/userconfig"
)

// ResolveServer determines which server to use based on the following priority:
// 1. If serverAlias is provided, use that server
// 2. If user has a selected server in their local config, use that
// 3. If only one server in project config, use that
// 4. Otherwise, prompt user to select a server interactively
func ResolveServer(projectConfig *config.Config, serverAlias string) (*config.Server, error) {
	if serverAlias != "" {
		server, err := projectConfig.GetServerByAlias(serverAlias)
		if err != nil {
			return nil, err
		}
		return server, nil
	}

	selectedAddress, err := userconfig.GetSelectedServer()
	if err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	if selectedAddress != "" {
		server, err := getServerByAddress(projectConfig, selectedAddress)
		if err != nil {
			// Selected server no longer exists in project config, clear it and continue
			_ = userconfig.SetSelectedServer("")
		} else {
			return server, nil
		}
	}

	if len(projectConfig.Servers) == 1 {
		server := &projectConfig.Servers[0]
		if err := userconfig.SetSelectedServer(server.Address); err != nil {
			fmt.Printf("Warning: failed to save selected server: %v\n", err)
		}
		return server, nil
	}

	server, err := PromptServerSelection(projectConfig)
	if err != nil {
		return nil, err
	}

	if err := userconfig.SetSelectedServer(server.Address); err != nil {
		fmt.Printf("Warning: failed to save selected server: %v\n", err)
	}

	return server, nil
}

// PromptServerSelection shows an interactive prompt for the user to select a server.
func PromptServerSelection(projectConfig *config.Config) (*config.Server, error) {
	if len(projectConfig.Servers) == 0 {
		return nil, fmt.Errorf("no servers configured in %s", config.ConfigFileName)
	}

	type serverOption struct {
		Label  string
		Server *config.Server
	}

	options := make([]serverOption, len(projectConfig.Servers))
	for i := range projectConfig.Servers {
		server := &projectConfig.Servers[i]
		options[i] = serverOption{
			Label:  fmt.Sprintf("%s (%s)", server.Alias, server.Address),
			Server: server,
		}
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "> {{ .Label | cyan }}",
		Inactive: "  {{ .Label }}",
		Selected: "{{ .Label | green }}",
	}

	prompt := promptui.Select{
		Label:     "Select a server",
		Items:     options,
		Templates: templates,
		Size:      10,
	}

	index, _, err := prompt.Run()
	if err != nil {
		return nil, fmt.Errorf("server selection cancelled: %w", err)
	}

	return options[index].Server, nil
}

func getServerByAddress(cfg *config.Config, address string) (*config.Server, error) {
	for i := range cfg.Servers {
		if cfg.Servers[i].Address == address {
			return &cfg.Servers[i], nil
		}
	}
	return nil, fmt.Errorf("server with address '%s' not found in project config", address)
}

// GetServerByAddressOrAlias finds a server by address or alias.
func GetServerByAddressOrAlias(cfg *config.Config, addressOrAlias string) (*config.Server, error) {
	for i := range cfg.Servers {
		if cfg.Servers[i].Address == addressOrAlias {
			return &cfg.Servers[i], nil
		}
	}

	for i := range cfg.Servers {
		if cfg.Servers[i].Alias == addressOrAlias {
			return &cfg.Servers[i], nil
		}
	}

	return nil, fmt.Errorf("server with address or alias '%s' not found", addressOrAlias)
}
