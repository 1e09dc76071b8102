package api

import "fmt"

// Kind classifies a request failure for the layers above. The route guard
// special-cases KindAuth to invalidate the session.
type Kind int

const (
	// KindNetwork means the request never reached the server or no response
	// came back.
	KindNetwork Kind = iota + 1
	// KindValidation is any 4xx other than 401/403.
	KindValidation
	// KindAuth is a 401 or 403.
	KindAuth
	// KindServer is any 5xx.
	KindServer
)

// Error is the structured failure every request funnels into. Message holds
// the server-provided error text when present, a generic fallback otherwise.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return "api: " + e.Message
}

// IsNotFound reports whether the failure is a 404.
func (e *Error) IsNotFound() bool {
	return e != nil && e.Status == 404
}

func kindForStatus(status int) Kind {
	switch {
	case status == 401 || status == 403:
		return KindAuth
	case status >= 500:
		return KindServer
	default:
		return KindValidation
	}
}
