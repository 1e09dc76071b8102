// Package testutil wires a full client stack against an in-process stub API
// for integration tests.
package testutil

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"JobLane-client/internal/api"
	"JobLane-client/internal/config"
	"JobLane-client/internal/dispatch"
	"JobLane-client/internal/service"
	"JobLane-client/internal/session"
	"JobLane-client/internal/store"
	"JobLane-client/internal/stubserver"
)

// Env is one client stack talking to one seeded stub server.
type Env struct {
	Server  *httptest.Server
	API     *api.Client
	Store   *store.Store
	Session *session.Manager
	Guard   *session.Guard

	Auth      *service.Auth
	Admin     *service.Admin
	Employer  *service.Employer
	JobSeeker *service.JobSeeker
}

// NewEnv spins up a seeded stub server and a client wired to it. Everything
// is torn down with the test.
func NewEnv(t *testing.T) *Env {
	t.Helper()

	stub := stubserver.New(config.Config{
		StubSecret:         "test-secret",
		RateLimitPerSecond: 1000,
	})
	server := httptest.NewServer(stub.Router())
	t.Cleanup(server.Close)

	return newStack(t, server)
}

// SecondStack builds another independent client stack (own cookie jar, own
// store) against the same stub server, for cross-role scenarios.
func (e *Env) SecondStack(t *testing.T) *Env {
	t.Helper()
	return newStack(t, e.Server)
}

func newStack(t *testing.T, server *httptest.Server) *Env {
	t.Helper()

	client, err := api.New(server.URL)
	if err != nil {
		t.Fatalf("failed to build API client: %v", err)
	}

	st := store.New()
	d := dispatch.New(st)
	manager := session.NewManager(filepath.Join(t.TempDir(), "session.json"))
	client.OnAuthFailure(func() {
		manager.Clear()
		st.ClearSession()
	})

	return &Env{
		Server:    server,
		API:       client,
		Store:     st,
		Session:   manager,
		Guard:     session.NewGuard(st),
		Auth:      service.NewAuth(client, d, manager),
		Admin:     service.NewAdmin(client, d),
		Employer:  service.NewEmployer(client, d),
		JobSeeker: service.NewJobSeeker(client, d),
	}
}

// LoginAs signs in one of the seeded accounts and fails the test on error.
func (e *Env) LoginAs(t *testing.T, email string) {
	t.Helper()
	act := <-e.Auth.Login(context.Background(), service.Credentials{
		Email:    email,
		Password: stubserver.SeedPassword,
	})
	if act.Err != nil {
		t.Fatalf("login as %s failed: %s", email, act.Err.Message)
	}
}
