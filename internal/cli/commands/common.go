package commands

import (
	"fmt"

	"github.com/officehub-dev/officehub/internal/cli/api"
	"github.com/officehub-dev/officehub/internal/cli/config"
	"github.com/officehub-dev/officehub/internal/cli/guard"
	"github.com/officehub-dev/officehub/internal/cli/serverselect"
	"github.com/officehub-dev/officehub/internal/cli/session"
)

// getSelectedServer loads the project config and resolves which server to
// use. This is common logic used by most commands.
func getSelectedServer(serverAlias string) (*config.Server, *config.Config, error) {
	cfg, err := config.LoadFromCurrentDir()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w\nRun 'officehub init' to create a configuration file", err)
	}

	server, err := serverselect.ResolveServer(cfg, serverAlias)
	if err != nil {
		return nil, nil, err
	}

	if server.Address == "" {
		return nil, nil, fmt.Errorf("server address is empty. Please edit %s and add a valid address", config.ConfigFileName)
	}

	return server, cfg, nil
}

// openSessionStore opens the credential store selected in the project
// config, loading any persisted session.
func openSessionStore(cfg *config.Config) (*session.Store, error) {
	if cfg.CredentialStore == config.CredentialStoreKeyring {
		return session.NewStore(session.NewKeyringBackend())
	}

	path, err := session.DefaultSessionPath()
	if err != nil {
		return nil, err
	}
	return session.NewStore(session.NewFileBackend(path))
}

// newAPIClient wires up the client, its credential store, and the
// unauthorized handler that sends the user back to login.
func newAPIClient(serverAlias string) (*api.Client, *session.Store, error) {
	server, cfg, err := getSelectedServer(serverAlias)
	if err != nil {
		return nil, nil, err
	}

	sessions, err := openSessionStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	client := api.New(server.Address, sessions)
	client.OnUnauthorized(func() {
		fmt.Println("Session expired. Run 'officehub login' to sign in again.")
	})

	return client, sessions, nil
}

// requireScreen asks the route guard whether the screen may render. When
// the guard redirects to login the command stops with a hint instead.
func requireScreen(sessions *session.Store, screen guard.Screen) error {
	g := guard.New(sessions)
	if g.Resolve(screen) != screen {
		return fmt.Errorf("not signed in: run 'officehub login' first")
	}
	return nil
}

// businessErr converts a failure envelope into a user-facing error,
// preserving the backend's message verbatim.
func businessErr[T any](result *api.Result[T]) error {
	if result.OK() {
		return nil
	}
	if result.Msg != "" {
		return fmt.Errorf("request refused: %s", result.Msg)
	}
	return fmt.Errorf("request refused by server")
}
