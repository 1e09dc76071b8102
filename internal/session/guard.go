package session

import (
	"sync"

	"JobLane-client/internal/model"
	"JobLane-client/internal/store"
)

// Decision is the route guard's verdict for one navigation.
type Decision int

const (
	// Allow renders the requested view.
	Allow Decision = iota
	// ShowLoading renders a placeholder while session bootstrap is outstanding.
	ShowLoading
	// RedirectLogin sends the user to /login, remembering where they wanted
	// to go.
	RedirectLogin
	// RedirectHome sends an authenticated user with the wrong role to /.
	RedirectHome
)

// RouteRoles maps the protected client routes to the role they require.
// Routes absent from the map are public.
var RouteRoles = map[string]string{
	"/admin":                   model.RoleAdmin,
	"/admin/profile":           model.RoleAdmin,
	"/employer":                model.RoleEmployer,
	"/employer/profile":        model.RoleEmployer,
	"/job_seeker":              model.RoleJobSeeker,
	"/job_seeker/profile":      model.RoleJobSeeker,
	"/job_seeker/edit-profile": model.RoleJobSeeker,
	"/job_seeker/search":       model.RoleJobSeeker,
}

// RoleHome returns the default view for a role.
func RoleHome(role string) string {
	switch role {
	case model.RoleAdmin:
		return "/admin"
	case model.RoleEmployer:
		return "/employer"
	case model.RoleJobSeeker:
		return "/job_seeker"
	}
	return "/"
}

// Guard gates protected views on {bootstrap resolved, authenticated user,
// role match}. It reads session state exclusively from the store.
type Guard struct {
	mu         sync.Mutex
	store      *store.Store
	returnPath string
}

// NewGuard builds a guard over the shared store.
func NewGuard(s *store.Store) *Guard {
	return &Guard{store: s}
}

// Check decides what to render for a navigation to path. requiredRole is
// empty for public routes.
func (g *Guard) Check(path, requiredRole string) Decision {
	auth := g.store.Auth()

	// Public routes render regardless of bootstrap state; only protected
	// content waits for the session question to settle.
	if requiredRole == "" {
		return Allow
	}
	if !auth.Checked {
		return ShowLoading
	}
	if auth.User == nil {
		g.mu.Lock()
		g.returnPath = path
		g.mu.Unlock()
		return RedirectLogin
	}
	if auth.User.Role != requiredRole {
		return RedirectHome
	}
	return Allow
}

// CheckRoute is Check with the role looked up from the route table. Unknown
// routes are public.
func (g *Guard) CheckRoute(path string) Decision {
	return g.Check(path, RouteRoles[path])
}

// ConsumeReturnPath yields the path recorded by the last RedirectLogin and
// clears it, so a successful login returns the user where they were headed.
// Defaults to "/" when nothing is recorded.
func (g *Guard) ConsumeReturnPath() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	path := g.returnPath
	g.returnPath = ""
	if path == "" {
		return "/"
	}
	return path
}
