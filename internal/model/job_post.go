package model

import (
	"time"

	"github.com/google/uuid"
)

// Employment types accepted by the API for a job post.
const (
	EmploymentFullTime       = "full_time"
	EmploymentPartTime       = "part_time"
	EmploymentContract       = "contract"
	EmploymentInternship     = "internship"
	EmploymentApprenticeship = "apprenticeship"
)

var employmentTypes = []string{
	EmploymentFullTime,
	EmploymentPartTime,
	EmploymentContract,
	EmploymentInternship,
	EmploymentApprenticeship,
}

// ValidEmploymentType reports whether t is one of the accepted employment types.
func ValidEmploymentType(t string) bool {
	for _, v := range employmentTypes {
		if v == t {
			return true
		}
	}
	return false
}

// JobPost is the central listing entity. Requirements and Responsibilities
// are ordered and may contain duplicate strings; the client never
// de-duplicates them.
type JobPost struct {
	ID         uint      `json:"id"`
	EmployerID uuid.UUID `json:"employer_id"`

	Title               string     `json:"title"`
	Description         string     `json:"description"`
	EmploymentType      string     `json:"employment_type"`
	SalaryMin           int        `json:"salary_min"`
	SalaryMax           int        `json:"salary_max"`
	Location            string     `json:"location"`
	Address             string     `json:"address"`
	Category            string     `json:"category"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	Requirements        []string   `json:"requirements"`
	Responsibilities    []string   `json:"responsibilities"`
	ImageURLs           []string   `json:"image_urls,omitempty"`
	IsActive            bool       `json:"is_active"`
	PostTime            time.Time  `json:"post_time"`
}
