package guard

import (
	"testing"

	"github.com/officehub-dev/officehub/internal/cli/session"
)

func newTestStore(t *testing.T) *session.Store {
	t.Helper()

	store, err := session.NewStore(session.NewMemoryBackend())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func signIn(t *testing.T, store *session.Store) {
	t.Helper()

	err := store.SetSession("Bearer abc.def.ghi", session.Profile{Username: "admin", Status: 1})
	if err != nil {
		t.Fatalf("failed to set session: %v", err)
	}
}

func TestGuard_Resolve(t *testing.T) {
	protected := []Screen{ScreenDashboard, ScreenEmployees, ScreenLeave, ScreenAttendance}

	t.Run("anonymous is redirected to login", func(t *testing.T) {
		g := New(newTestStore(t))

		for _, screen := range protected {
			if got := g.Resolve(screen); got != ScreenLogin {
				t.Errorf("Resolve(%s) = %s, want %s", screen, got, ScreenLogin)
			}
			if g.Allow(screen) {
				t.Errorf("Allow(%s) = true, want false", screen)
			}
		}
	})

	t.Run("authenticated renders the requested screen", func(t *testing.T) {
		store := newTestStore(t)
		signIn(t, store)
		g := New(store)

		for _, screen := range protected {
			if got := g.Resolve(screen); got != screen {
				t.Errorf("Resolve(%s) = %s, want %s", screen, got, screen)
			}
		}
	})

	t.Run("login screen reachable in both states", func(t *testing.T) {
		store := newTestStore(t)
		g := New(store)

		if got := g.Resolve(ScreenLogin); got != ScreenLogin {
			t.Errorf("Resolve(login) while anonymous = %s", got)
		}

		signIn(t, store)
		if got := g.Resolve(ScreenLogin); got != ScreenLogin {
			t.Errorf("Resolve(login) while authenticated = %s", got)
		}
	})
}

func TestGuard_StateFollowsStore(t *testing.T) {
	store := newTestStore(t)
	g := New(store)

	if g.State() != Anonymous {
		t.Fatalf("fresh store state = %s, want anonymous", g.State())
	}

	signIn(t, store)
	if g.State() != Authenticated {
		t.Fatalf("state after login = %s, want authenticated", g.State())
	}

	if err := store.ClearSession(); err != nil {
		t.Fatalf("failed to clear session: %v", err)
	}
	if g.State() != Anonymous {
		t.Fatalf("state after clear = %s, want anonymous", g.State())
	}
}
