// Package service contains one dispatcher per resource domain. Every method
// issues exactly one HTTP call through the dispatch layer under a stable
// action type, so the store can correlate phases with its merge rules.
package service

import (
	"context"
	"net/http"

	"JobLane-client/internal/api"
	"JobLane-client/internal/dispatch"
	"JobLane-client/internal/model"
	"JobLane-client/internal/session"
	"JobLane-client/internal/store"
)

// Auth handles login, registration, logout, and session validation. It
// persists the session slice through the manager on every resolution that
// changes the signed-in user.
type Auth struct {
	api     *api.Client
	d       *dispatch.Dispatcher
	session *session.Manager
}

// NewAuth builds the auth service.
func NewAuth(c *api.Client, d *dispatch.Dispatcher, m *session.Manager) *Auth {
	return &Auth{api: c, d: d, session: m}
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the register payload.
type Registration struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// Login signs in and stores the session user on success.
func (a *Auth) Login(ctx context.Context, creds Credentials) <-chan dispatch.Action {
	return a.d.Dispatch(ctx, store.ActAuthLogin, func(ctx context.Context) (any, error) {
		var u model.User
		if err := a.api.SendJSON(ctx, http.MethodPost, "/auth/login", creds, &u); err != nil {
			return nil, err
		}
		a.session.Set(u)
		return u, nil
	})
}

// Register creates an account and signs it in.
func (a *Auth) Register(ctx context.Context, reg Registration) <-chan dispatch.Action {
	return a.d.Dispatch(ctx, store.ActAuthRegister, func(ctx context.Context) (any, error) {
		var u model.User
		if err := a.api.SendJSON(ctx, http.MethodPost, "/auth/register", reg, &u); err != nil {
			return nil, err
		}
		a.session.Set(u)
		return u, nil
	})
}

// Logout signs out and clears the persisted session.
func (a *Auth) Logout(ctx context.Context) <-chan dispatch.Action {
	return a.d.Dispatch(ctx, store.ActAuthLogout, func(ctx context.Context) (any, error) {
		if err := a.api.SendJSON(ctx, http.MethodPost, "/auth/logout", nil, nil); err != nil {
			return nil, err
		}
		a.session.Clear()
		return nil, nil
	})
}

// Me validates the current session against the server. Dispatched
// unconditionally on every application start, not gated on hydrated state.
func (a *Auth) Me(ctx context.Context) <-chan dispatch.Action {
	return a.d.Dispatch(ctx, store.ActAuthMe, func(ctx context.Context) (any, error) {
		var u model.User
		if err := a.api.GetJSON(ctx, "/auth/me", nil, &u); err != nil {
			return nil, err
		}
		a.session.Set(u)
		return u, nil
	})
}
