package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)

	cfg := &Config{
		Servers: []Server{
			{Address: "localhost:8000", Alias: "local"},
			{Address: "10.0.0.5:8000", Alias: "staging"},
		},
		CredentialStore: CredentialStoreKeyring,
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(loaded.Servers) != 2 {
		t.Fatalf("servers = %d, want 2", len(loaded.Servers))
	}
	if loaded.Servers[1].Alias != "staging" {
		t.Errorf("alias = %q, want %q", loaded.Servers[1].Alias, "staging")
	}
	if loaded.CredentialStore != CredentialStoreKeyring {
		t.Errorf("credentialStore = %q, want %q", loaded.CredentialStore, CredentialStoreKeyring)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestGetServerByAlias(t *testing.T) {
	cfg := &Config{
		Servers: []Server{
			{Address: "localhost:8000", Alias: "local"},
		},
	}

	server, err := cfg.GetServerByAlias("local")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if server.Address != "localhost:8000" {
		t.Errorf("address = %q", server.Address)
	}

	if _, err := cfg.GetServerByAlias("missing"); err == nil {
		t.Error("expected error for unknown alias")
	}
}

func TestGetDefaultServer_Empty(t *testing.T) {
	cfg := &Config{}
	if _, err := cfg.GetDefaultServer(); err == nil {
		t.Error("expected error when no servers configured")
	}
}
