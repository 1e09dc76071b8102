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

// JobSeeker drives the job-seeker dashboard: profile, resumes, saved jobs,
// and applications.
type JobSeeker struct {
	api *api.Client
	d   *dispatch.Dispatcher
}

// NewJobSeeker builds the job-seeker service.
func NewJobSeeker(c *api.Client, d *dispatch.Dispatcher) *JobSeeker {
	return &JobSeeker{api: c, d: d}
}

// JobSeekerProfileInput carries the editable profile fields.
type JobSeekerProfileInput struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Location  string  `json:"location"`
	Bio       string  `json:"bio"`
	Tel       *string `json:"tel"`
	Email     *string `json:"email"`
}

// FetchProfile loads the profile singleton; a 404 rejection means the UI
// shows the create form instead of the edit form.
func (j *JobSeeker) FetchProfile(ctx context.Context) <-chan dispatch.Action {
	return j.d.Dispatch(ctx, store.ActSeekerFetchProfile, func(ctx context.Context) (any, error) {
		var out model.JobSeekerProfile
		if err := j.api.GetJSON(ctx, "/job-seeker/profile", nil, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// CreateProfile creates the profile singleton. The client never creates a
// second one for the same user.
func (j *JobSeeker) CreateProfile(ctx context.Context, in JobSeekerProfileInput) <-chan dispatch.Action {
	return j.d.Dispatch(ctx, store.ActSeekerCreateProfile, func(ctx context.Context) (any, error) {
		var out model.JobSeekerProfile
		if err := j.api.SendJSON(ctx, http.MethodPost, "/job-seeker/profile", in, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// UpdateProfile replaces the editable profile fields.
func (j *JobSeeker) UpdateProfile(ctx context.Context, in JobSeekerProfileInput) <-chan dispatch.Action {
	return j.d.Dispatch(ctx, store.ActSeekerUpdateProfile, func(ctx context.Context) (any, error) {
		var out model.JobSeekerProfile
		if err := j.api.SendJSON(ctx, http.MethodPut, "/job-seeker/profile", in, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// DeleteProfile removes the profile singleton.
func (j *JobSeeker) DeleteProfile(ctx context.Context) <-chan dispatch.Action {
	return j.d.Dispatch(ctx, store.ActSeekerDeleteProfile, func(ctx context.Context) (any, error) {
		if err := j.api.SendJSON(ctx, http.MethodDelete, "/job-seeker/profile", nil, nil); err != nil {
			return nil, err
		}
		return nil, nil
	})
}

// FetchResumes loads the stored resume records (metadata only).
func (j *JobSeeker) FetchResumes(ctx context.Context) <-chan dispatch.Action {
	return j.d.Dispatch(ctx, store.ActSeekerFetchResumes, func(ctx context.Context) (any, error) {
		var out model.List[model.Resume]
		if err := j.api.GetJSON(ctx, "/job-seeker/resumes", nil, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// UploadResume sends a resume file as a multipart submission and resolves
// with the stored record.
func (j *JobSeeker) UploadResume(ctx context.Context, att forms.FileAttachment) <-chan dispatch.Action {
	return j.d.Dispatch(ctx, store.ActSeekerUploadResume, func(ctx context.Context) (any, error) {
		contentType, body, err := forms.FileForm("resume", att)
		if err != nil {
			return nil, err
		}
		var out model.Resume
		if err := j.api.Do(ctx, http.MethodPost, "/job-seeker/resumes", nil, contentType, body, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// DeleteResume removes a stored resume.
func (j *JobSeeker) DeleteResume(ctx context.Context, id uuid.UUID) <-chan dispatch.Action {
	return j.d.Dispatch(ctx, store.ActSeekerDeleteResume, func(ctx context.Context) (any, error) {
		if err := j.api.SendJSON(ctx, http.MethodDelete, "/job-seeker/resumes/"+id.String(), nil, nil); err != nil {
			return nil, err
		}
		return id, nil
	})
}

// PreviewResume fetches the binary content for one stored resume and binds
// it to that resume's display filename in state. ClearResumePreview on the
// store drops it again.
func (j *JobSeeker) PreviewResume(ctx context.Context, r model.Resume) <-chan dispatch.Action {
	return j.d.Dispatch(ctx, store.ActSeekerPreviewResume, func(ctx context.Context) (any, error) {
		content, err := j.api.FetchBinary(ctx, "/job-seeker/resumes/"+r.ID.String())
		if err != nil {
			return nil, err
		}
		return store.ResumePreview{ResumeID: r.ID, FileName: r.FileName, Content: content}, nil
	})
}

// FetchSavedJobs loads the bookmark list.
func (j *JobSeeker) FetchSavedJobs(ctx context.Context) <-chan dispatch.Action {
	return j.d.Dispatch(ctx, store.ActSeekerFetchSaved, func(ctx context.Context) (any, error) {
		var out model.List[model.SavedJob]
		if err := j.api.GetJSON(ctx, "/job-seeker/saved-jobs", nil, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// SaveJob bookmarks a job post.
func (j *JobSeeker) SaveJob(ctx context.Context, jobID uint) <-chan dispatch.Action {
	return j.d.Dispatch(ctx, store.ActSeekerSaveJob, func(ctx context.Context) (any, error) {
		payload := map[string]uint{"job_id": jobID}
		var out model.SavedJob
		if err := j.api.SendJSON(ctx, http.MethodPost, "/job-seeker/saved-jobs", payload, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// UnsaveJob removes a bookmark.
func (j *JobSeeker) UnsaveJob(ctx context.Context, id uuid.UUID) <-chan dispatch.Action {
	return j.d.Dispatch(ctx, store.ActSeekerUnsaveJob, func(ctx context.Context) (any, error) {
		if err := j.api.SendJSON(ctx, http.MethodDelete, "/job-seeker/saved-jobs/"+id.String(), nil, nil); err != nil {
			return nil, err
		}
		return id, nil
	})
}

// FetchApplications loads the job seeker's applications.
func (j *JobSeeker) FetchApplications(ctx context.Context) <-chan dispatch.Action {
	return j.d.Dispatch(ctx, store.ActSeekerFetchApps, func(ctx context.Context) (any, error) {
		var out model.List[model.Application]
		if err := j.api.GetJSON(ctx, "/job-seeker/applications", nil, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// SubmitApplication applies to a job post with a stored resume.
func (j *JobSeeker) SubmitApplication(ctx context.Context, jobID uint, resumeID uuid.UUID) <-chan dispatch.Action {
	return j.d.Dispatch(ctx, store.ActSeekerSubmitApp, func(ctx context.Context) (any, error) {
		payload := map[string]any{"job_id": jobID, "resume_id": resumeID}
		var out model.Application
		if err := j.api.SendJSON(ctx, http.MethodPost, "/job-seeker/applications", payload, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// WithdrawApplication withdraws an application; the server responds with the
// application in its withdrawn state.
func (j *JobSeeker) WithdrawApplication(ctx context.Context, id uuid.UUID) <-chan dispatch.Action {
	return j.d.Dispatch(ctx, store.ActSeekerWithdrawApp, func(ctx context.Context) (any, error) {
		var out model.Application
		if err := j.api.SendJSON(ctx, http.MethodDelete, "/job-seeker/applications/"+id.String(), nil, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// SearchJobs runs the public job search with pagination and filters.
func (j *JobSeeker) SearchJobs(ctx context.Context, q model.ListQuery) <-chan dispatch.Action {
	return j.d.Dispatch(ctx, store.ActSeekerSearchJobs, func(ctx context.Context) (any, error) {
		var out model.List[model.JobPost]
		if err := j.api.GetJSON(ctx, "/job-posts/search", q.Values(), &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// FetchJobDetails loads one job post into the details slot.
func (j *JobSeeker) FetchJobDetails(ctx context.Context, id uint) <-chan dispatch.Action {
	return j.d.Dispatch(ctx, store.ActSeekerFetchJobDetail, func(ctx context.Context) (any, error) {
		var out model.JobPost
		if err := j.api.GetJSON(ctx, fmt.Sprintf("/job-posts/%d", id), nil, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}
