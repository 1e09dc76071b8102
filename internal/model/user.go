// Package model contain the entity shapes exchanged with the job-board API.
package model

import "github.com/google/uuid"

// Roles a signed-in user can carry. Route gating compares against these.
const (
	RoleAdmin     = "admin"
	RoleEmployer  = "employer"
	RoleJobSeeker = "job_seeker"
)

// User is the session singleton returned by login and /auth/me.
type User struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
}

// ContactInfo holds the optional contact fields shared by both profile kinds.
type ContactInfo struct {
	Tel   *string `json:"tel"`
	Email *string `json:"email"`
}

// EmployerProfile is one-to-one with an employer User. Absent until the
// employer explicitly creates it.
type EmployerProfile struct {
	UserID uuid.UUID `json:"user_id"`
	ContactInfo
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry"`
	Website     string `json:"website"`
	Address     string `json:"address"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
}

// JobSeekerProfile is one-to-one with a job-seeker User.
type JobSeekerProfile struct {
	UserID uuid.UUID `json:"user_id"`
	ContactInfo
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Location  string `json:"location"`
	Bio       string `json:"bio"`
	PhotoURL  string `json:"photo_url"`
}
