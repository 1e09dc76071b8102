package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"JobLane-client/internal/api"
	"JobLane-client/internal/dispatch"
	"JobLane-client/internal/forms"
	"JobLane-client/internal/model"
	"JobLane-client/internal/store"
)

// Employer drives the employer dashboard: company profile, owned job posts,
// received applications, and analytics.
type Employer struct {
	api *api.Client
	d   *dispatch.Dispatcher
}

// NewEmployer builds the employer service.
func NewEmployer(c *api.Client, d *dispatch.Dispatcher) *Employer {
	return &Employer{api: c, d: d}
}

// EmployerProfileInput carries the editable profile fields. The UI branches
// between create and update on whether a profile is already present.
type EmployerProfileInput struct {
	CompanyName string  `json:"company_name"`
	Industry    string  `json:"industry"`
	Website     string  `json:"website"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
	Tel         *string `json:"tel"`
	Email       *string `json:"email"`
}

// FetchProfile loads the employer profile singleton. A 404 rejection means
// no profile exists yet and the UI shows the create form.
func (e *Employer) FetchProfile(ctx context.Context) <-chan dispatch.Action {
	return e.d.Dispatch(ctx, store.ActEmployerFetchProfile, func(ctx context.Context) (any, error) {
		var out model.EmployerProfile
		if err := e.api.GetJSON(ctx, "/employer/profile", nil, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// CreateProfile creates the profile singleton.
func (e *Employer) CreateProfile(ctx context.Context, in EmployerProfileInput) <-chan dispatch.Action {
	return e.d.Dispatch(ctx, store.ActEmployerCreateProfile, func(ctx context.Context) (any, error) {
		var out model.EmployerProfile
		if err := e.api.SendJSON(ctx, http.MethodPost, "/employer/profile", in, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// UpdateProfile replaces the editable profile fields.
func (e *Employer) UpdateProfile(ctx context.Context, in EmployerProfileInput) <-chan dispatch.Action {
	return e.d.Dispatch(ctx, store.ActEmployerUpdateProfile, func(ctx context.Context) (any, error) {
		var out model.EmployerProfile
		if err := e.api.SendJSON(ctx, http.MethodPut, "/employer/profile", in, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// DeleteProfile removes the profile singleton.
func (e *Employer) DeleteProfile(ctx context.Context) <-chan dispatch.Action {
	return e.d.Dispatch(ctx, store.ActEmployerDeleteProfile, func(ctx context.Context) (any, error) {
		if err := e.api.SendJSON(ctx, http.MethodDelete, "/employer/profile", nil, nil); err != nil {
			return nil, err
		}
		return nil, nil
	})
}

// UploadLogo sends the company logo as a multipart submission and resolves
// with the refreshed profile.
func (e *Employer) UploadLogo(ctx context.Context, att forms.FileAttachment) <-chan dispatch.Action {
	return e.d.Dispatch(ctx, store.ActEmployerUploadLogo, func(ctx context.Context) (any, error) {
		contentType, body, err := forms.FileForm("company_logo", att)
		if err != nil {
			return nil, err
		}
		var out model.EmployerProfile
		if err := e.api.Do(ctx, http.MethodPost, "/employer/profile/logo", nil, contentType, body, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// FetchJobs loads one page of the employer's own job posts.
func (e *Employer) FetchJobs(ctx context.Context, q model.ListQuery) <-chan dispatch.Action {
	return e.d.Dispatch(ctx, store.ActEmployerFetchJobs, func(ctx context.Context) (any, error) {
		var out model.List[model.JobPost]
		if err := e.api.GetJSON(ctx, "/employer/jobs", q.Values(), &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// CreateJob submits a new job post form and resolves with the created entity.
func (e *Employer) CreateJob(ctx context.Context, form *forms.JobPostForm) <-chan dispatch.Action {
	return e.d.Dispatch(ctx, store.ActEmployerCreateJob, func(ctx context.Context) (any, error) {
		contentType, body, err := form.Encode()
		if err != nil {
			return nil, err
		}
		var out model.JobPost
		if err := e.api.Do(ctx, http.MethodPost, "/employer/jobs", nil, contentType, body, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// UpdateJob submits a job post edit and resolves with the full entity.
func (e *Employer) UpdateJob(ctx context.Context, id uint, form *forms.JobPostForm) <-chan dispatch.Action {
	return e.d.Dispatch(ctx, store.ActEmployerUpdateJob, func(ctx context.Context) (any, error) {
		contentType, body, err := form.Encode()
		if err != nil {
			return nil, err
		}
		var out model.JobPost
		path := fmt.Sprintf("/employer/jobs/%d", id)
		if err := e.api.Do(ctx, http.MethodPut, path, nil, contentType, body, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// DeleteJob removes a job post the employer owns. Deletion is
// server-confirmed first; the reducer filters on resolution.
func (e *Employer) DeleteJob(ctx context.Context, id uint) <-chan dispatch.Action {
	return e.d.Dispatch(ctx, store.ActEmployerDeleteJob, func(ctx context.Context) (any, error) {
		path := fmt.Sprintf("/employer/jobs/%d", id)
		if err := e.api.SendJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
			return nil, err
		}
		return id, nil
	})
}

// FetchAppliedJobs loads applications received across the employer's posts.
func (e *Employer) FetchAppliedJobs(ctx context.Context, q model.ListQuery) <-chan dispatch.Action {
	return e.d.Dispatch(ctx, store.ActEmployerFetchApplied, func(ctx context.Context) (any, error) {
		var out model.List[model.Application]
		if err := e.api.GetJSON(ctx, "/employer/applied-jobs", q.Values(), &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// FetchAnalytics loads the employer dashboard summary.
func (e *Employer) FetchAnalytics(ctx context.Context) <-chan dispatch.Action {
	return e.d.Dispatch(ctx, store.ActEmployerFetchStats, func(ctx context.Context) (any, error) {
		var out model.EmployerAnalytics
		if err := e.api.GetJSON(ctx, "/employer/analytics", nil, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// SetApplicationStatus moves an application to a new status and resolves
// with the full updated application.
func (e *Employer) SetApplicationStatus(ctx context.Context, id uuid.UUID, status string) <-chan dispatch.Action {
	return e.d.Dispatch(ctx, store.ActEmployerSetAppStatus, func(ctx context.Context) (any, error) {
		payload := map[string]string{"status": status}
		var out model.Application
		path := "/employer/applications/" + id.String() + "/status"
		if err := e.api.SendJSON(ctx, http.MethodPut, path, payload, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}
