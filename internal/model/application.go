package model

import (
	"time"

	"github.com/google/uuid"
)

// Application statuses an employer can move an application through.
const (
	StatusPending     = "pending"
	StatusReviewed    = "reviewed"
	StatusInterviewed = "interviewed"
	StatusOffered     = "offered"
	StatusRejected    = "rejected"
	StatusWithdrawn   = "withdrawn"
)

var applicationStatuses = []string{
	StatusPending,
	StatusReviewed,
	StatusInterviewed,
	StatusOffered,
	StatusRejected,
	StatusWithdrawn,
}

// ValidApplicationStatus reports whether s is one of the accepted statuses.
func ValidApplicationStatus(s string) bool {
	for _, v := range applicationStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Application links a job seeker to a job post.
type Application struct {
	ID          uuid.UUID `json:"id"`
	JobID       uint      `json:"job_id"`
	ApplicantID uuid.UUID `json:"applicant_id"`
	ResumeID    uuid.UUID `json:"resume_id"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
}

// SavedJob is a bookmark join between a job seeker and a job post.
type SavedJob struct {
	ID      uuid.UUID `json:"id"`
	JobID   uint      `json:"job_id"`
	OwnerID uuid.UUID `json:"owner_id"`
	SavedAt time.Time `json:"saved_at"`
}

// Resume is a stored resume record. Binary content is fetched on demand
// through the preview endpoint and never held on the entity.
type Resume struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	StoredName string    `json:"stored_name"`
	FileName   string    `json:"file_name"`
	UploadedAt time.Time `json:"uploaded_at"`
}
