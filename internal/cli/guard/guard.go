// Package guard decides whether a requested screen may be shown for the
// current session state. It keeps no state of its own: every decision is a
// synchronous read of the credential store, so login and logout (or a 401
// clearing the store) change the answer on the very next navigation.
package guard

import (
	"github.com/officehub-dev/officehub/internal/cli/session"
)

// State is the guard's view of the session.
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Screen identifies a navigable page of the console.
type Screen string

const (
	ScreenLogin      Screen = "login"
	ScreenDashboard  Screen = "dashboard"
	ScreenEmployees  Screen = "employees"
	ScreenLeave      Screen = "leave"
	ScreenAttendance Screen = "attendance"
)

// Guard gates navigation to protected screens.
type Guard struct {
	sessions *session.Store
}

// New creates a guard reading from the given credential store.
func New(sessions *session.Store) *Guard {
	return &Guard{sessions: sessions}
}

// State reports the current session state.
func (g *Guard) State() State {
	if _, ok := g.sessions.CurrentSession(); ok {
		return Authenticated
	}
	return Anonymous
}

// Resolve maps a navigation intent to the screen that will actually render.
// A protected screen requested while anonymous resolves to the login screen
// and the original intent is discarded. The login screen itself is always
// reachable, including while authenticated.
func (g *Guard) Resolve(requested Screen) Screen {
	if requested == ScreenLogin {
		return ScreenLogin
	}
	if g.State() == Anonymous {
		return ScreenLogin
	}
	return requested
}

// Allow reports whether the requested screen may render as asked.
func (g *Guard) Allow(requested Screen) bool {
	return g.Resolve(requested) == requested
}
