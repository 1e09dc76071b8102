package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"JobLane-client/internal/dispatch"
	"JobLane-client/internal/model"
	"JobLane-client/internal/store"
)

func storeWithUser(role string) *store.Store {
	s := store.New()
	s.Reduce(dispatch.Action{
		Type:    store.ActAuthLogin,
		Phase:   dispatch.Fulfilled,
		Seq:     1,
		Payload: model.User{ID: uuid.New(), Email: "someone@joblane.dev", Role: role},
	})
	return s
}

func storeCheckedSignedOut() *store.Store {
	s := store.New()
	// a rejected bootstrap call still settles the session question
	s.Reduce(dispatch.Action{Type: store.ActAuthMe, Phase: dispatch.Rejected, Seq: 1})
	return s
}

func TestGuard_ShowLoadingBeforeBootstrap(t *testing.T) {
	g := NewGuard(store.New())

	assert.Equal(t, ShowLoading, g.Check("/admin", model.RoleAdmin))
	// public routes never wait on the bootstrap
	assert.Equal(t, Allow, g.Check("/", ""))
	assert.Equal(t, Allow, g.CheckRoute("/login"))
}

func TestGuard_PublicRouteAllowed(t *testing.T) {
	g := NewGuard(storeCheckedSignedOut())
	assert.Equal(t, Allow, g.Check("/", ""))
}

func TestGuard_SignedOutRedirectsToLoginWithReturnPath(t *testing.T) {
	g := NewGuard(storeCheckedSignedOut())

	assert.Equal(t, RedirectLogin, g.Check("/employer", model.RoleEmployer))
	assert.Equal(t, "/employer", g.ConsumeReturnPath())
	// consumed once, then back to the default
	assert.Equal(t, "/", g.ConsumeReturnPath())
}

func TestGuard_WrongRoleRedirectsHome(t *testing.T) {
	g := NewGuard(storeWithUser(model.RoleJobSeeker))
	assert.Equal(t, RedirectHome, g.Check("/admin", model.RoleAdmin))
}

func TestGuard_MatchingRoleAllowed(t *testing.T) {
	g := NewGuard(storeWithUser(model.RoleAdmin))
	assert.Equal(t, Allow, g.Check("/admin", model.RoleAdmin))
}

func TestGuard_CheckRouteUsesRouteTable(t *testing.T) {
	g := NewGuard(storeWithUser(model.RoleJobSeeker))

	assert.Equal(t, Allow, g.CheckRoute("/job_seeker/search"))
	assert.Equal(t, RedirectHome, g.CheckRoute("/employer"))
	// unknown routes are public
	assert.Equal(t, Allow, g.CheckRoute("/about"))
}

func TestGuard_ProfileRoutesAreGated(t *testing.T) {
	signedOut := NewGuard(storeCheckedSignedOut())
	for _, path := range []string{"/admin/profile", "/employer/profile", "/job_seeker/profile"} {
		assert.Equal(t, RedirectLogin, signedOut.CheckRoute(path), path)
	}

	seeker := NewGuard(storeWithUser(model.RoleJobSeeker))
	assert.Equal(t, Allow, seeker.CheckRoute("/job_seeker/profile"))
	assert.Equal(t, RedirectHome, seeker.CheckRoute("/employer/profile"))
}

func TestRoleHome(t *testing.T) {
	assert.Equal(t, "/admin", RoleHome(model.RoleAdmin))
	assert.Equal(t, "/employer", RoleHome(model.RoleEmployer))
	assert.Equal(t, "/job_seeker", RoleHome(model.RoleJobSeeker))
	assert.Equal(t, "/", RoleHome("unknown"))
}
