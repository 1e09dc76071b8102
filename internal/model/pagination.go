package model

import (
	"net/url"
	"strconv"
)

// Pagination is attached to every paged list response. Every list endpoint
// returns it nested under "pagination"; there is no top-level variant.
type Pagination struct {
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	Limit      int `json:"limit"`
}

// List is the envelope every list endpoint responds with.
type List[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// ListQuery carries 1-based pagination plus the domain filter fields a list
// endpoint understands. Zero values are omitted from the encoded query.
type ListQuery struct {
	Page  int
	Limit int

	Role           string
	IsActive       *bool
	Category       string
	Title          string
	Location       string
	EmploymentType string
	SalaryMin      int
	SalaryMax      int
}

// Values encodes the query into URL parameters.
func (q ListQuery) Values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Role != "" {
		v.Set("role", q.Role)
	}
	if q.IsActive != nil {
		v.Set("is_active", strconv.FormatBool(*q.IsActive))
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Title != "" {
		v.Set("title", q.Title)
	}
	if q.Location != "" {
		v.Set("location", q.Location)
	}
	if q.EmploymentType != "" {
		v.Set("employment_type", q.EmploymentType)
	}
	if q.SalaryMin > 0 {
		v.Set("salary_min", strconv.Itoa(q.SalaryMin))
	}
	if q.SalaryMax > 0 {
		v.Set("salary_max", strconv.Itoa(q.SalaryMax))
	}
	return v
}

// AdminAnalytics is the admin dashboard summary.
type AdminAnalytics struct {
	TotalUsers        int `json:"total_users"`
	TotalJobPosts     int `json:"total_job_posts"`
	ActiveJobPosts    int `json:"active_job_posts"`
	TotalApplications int `json:"total_applications"`
}

// EmployerAnalytics is the employer dashboard summary.
type EmployerAnalytics struct {
	TotalJobs            int            `json:"total_jobs"`
	ActiveJobs           int            `json:"active_jobs"`
	TotalApplications    int            `json:"total_applications"`
	ApplicationsByStatus map[string]int `json:"applications_by_status"`
}
