// Package guard is the single source of truth for screen reachability. It is
// pure: decisions are computed from the session snapshot and a screen's
// required roles, with no I/O and no rendering concerns.
package guard

import (
	"github.com/ewasteportal/ewastecli/internal/client/models"
	"github.com/ewasteportal/ewastecli/internal/client/session"
)

// Screen identifies one navigable screen of the client.
type Screen string

const (
	ScreenWelcome   Screen = "/"
	ScreenLogin     Screen = "/login"
	ScreenRegister  Screen = "/register"
	ScreenSubmitter Screen = "/dashboard"
	ScreenRecycler  Screen = "/recycler"
	ScreenAdmin     Screen = "/admin"
)

// RequiredRoles returns the role set that grants access to the screen. An
// empty set means the screen is public.
func RequiredRoles(screen Screen) []models.Role {
	switch screen {
	case ScreenSubmitter:
		return []models.Role{models.RoleSubmitter}
	case ScreenRecycler:
		return []models.Role{models.RoleRecycler}
	case ScreenAdmin:
		return []models.Role{models.RoleAdmin}
	}
	return nil
}

// Decision is the outcome of an authorization check.
type Decision int

const (
	// DecisionDefer means the session state is not terminal yet; nothing
	// protected may be rendered and no redirect is issued.
	DecisionDefer Decision = iota

	// DecisionAllow grants access to the requested screen.
	DecisionAllow

	// DecisionRedirectLogin sends an anonymous user to the login screen.
	DecisionRedirectLogin

	// DecisionRedirectHome sends a user whose role does not match to the
	// neutral landing screen, never to another role's protected screen.
	DecisionRedirectHome
)

// Evaluate maps (session state, required roles) to a Decision. Unknown roles
// fail closed.
func Evaluate(snap session.Snapshot, required []models.Role) Decision {
	if !snap.State.Terminal() {
		return DecisionDefer
	}
	if len(required) == 0 {
		return DecisionAllow
	}
	if snap.State != session.StateAuthenticated {
		return DecisionRedirectLogin
	}
	if snap.Identity == nil || !snap.Identity.Role.Known() {
		return DecisionRedirectHome
	}
	for _, role := range required {
		if snap.Identity.Role == role {
			return DecisionAllow
		}
	}
	return DecisionRedirectHome
}

// HomeScreen returns the role's home screen: admin and recycler land on their
// dashboards, submitters on the default one, everyone else on the public
// welcome screen.
func HomeScreen(snap session.Snapshot) Screen {
	if snap.State != session.StateAuthenticated || snap.Identity == nil {
		return ScreenWelcome
	}
	switch snap.Identity.Role {
	case models.RoleAdmin:
		return ScreenAdmin
	case models.RoleRecycler:
		return ScreenRecycler
	case models.RoleSubmitter:
		return ScreenSubmitter
	}
	return ScreenWelcome
}

// Resolve maps a navigation request to the screen that is actually shown.
// render is false while the session state is still non-terminal; callers must
// keep showing a neutral loading indicator. An authenticated user requesting
// the welcome screen is dispatched to their role's home, making role the sole
// dispatch key.
func Resolve(snap session.Snapshot, requested Screen) (target Screen, render bool) {
	switch Evaluate(snap, RequiredRoles(requested)) {
	case DecisionDefer:
		return requested, false
	case DecisionRedirectLogin:
		return ScreenLogin, true
	case DecisionRedirectHome:
		return HomeScreen(snap), true
	}
	if requested == ScreenWelcome && snap.State == session.StateAuthenticated {
		return HomeScreen(snap), true
	}
	return requested, true
}
