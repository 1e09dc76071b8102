package store

import (
	"JobLane-client/internal/dispatch"
	"JobLane-client/internal/model"
)

// AuthState is the session singleton container. Checked flips to true once
// the bootstrap /auth/me call has resolved either way; the route guard shows
// a loading placeholder until then.
type AuthState struct {
	User    *model.User
	Checked bool
	Loading bool
	Error   string
}

// Auth returns a copy of the auth container.
func (s *Store) Auth() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.auth
	if s.auth.User != nil {
		u := *s.auth.User
		out.User = &u
	}
	return out
}

func (s *Store) mergeAuth(act dispatch.Action) {
	switch act.Type {
	case ActAuthLogin, ActAuthRegister, ActAuthMe:
		if u, ok := act.Payload.(model.User); ok {
			s.auth.User = &u
		}
		// Any resolved sign-in settles the bootstrap question.
		s.auth.Checked = true
	case ActAuthLogout:
		s.auth.User = nil
	}
}
