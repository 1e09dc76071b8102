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

// Admin drives the admin dashboard: user management, job-post moderation,
// analytics, and the category list.
type Admin struct {
	api *api.Client
	d   *dispatch.Dispatcher
}

// NewAdmin builds the admin service.
func NewAdmin(c *api.Client, d *dispatch.Dispatcher) *Admin {
	return &Admin{api: c, d: d}
}

// FetchUsers loads one page of users, optionally filtered by role.
func (a *Admin) FetchUsers(ctx context.Context, q model.ListQuery) <-chan dispatch.Action {
	return a.d.Dispatch(ctx, store.ActAdminFetchUsers, func(ctx context.Context) (any, error) {
		var out model.List[model.User]
		if err := a.api.GetJSON(ctx, "/admin/users", q.Values(), &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// FetchUser loads one user into the details slot.
func (a *Admin) FetchUser(ctx context.Context, id uuid.UUID) <-chan dispatch.Action {
	return a.d.Dispatch(ctx, store.ActAdminFetchUser, func(ctx context.Context) (any, error) {
		var out model.User
		if err := a.api.GetJSON(ctx, "/admin/users/"+id.String(), nil, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// UpdateUser patches a user and resolves with the full updated entity.
func (a *Admin) UpdateUser(ctx context.Context, id uuid.UUID, fields map[string]any) <-chan dispatch.Action {
	return a.d.Dispatch(ctx, store.ActAdminUpdateUser, func(ctx context.Context) (any, error) {
		var out model.User
		if err := a.api.SendJSON(ctx, http.MethodPatch, "/admin/users/"+id.String(), fields, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// DeleteUser removes a user; the reducer filters the id out of the list.
func (a *Admin) DeleteUser(ctx context.Context, id uuid.UUID) <-chan dispatch.Action {
	return a.d.Dispatch(ctx, store.ActAdminDeleteUser, func(ctx context.Context) (any, error) {
		if err := a.api.SendJSON(ctx, http.MethodDelete, "/admin/users/"+id.String(), nil, nil); err != nil {
			return nil, err
		}
		return id, nil
	})
}

// FetchJobPosts loads one page of job posts across all employers.
func (a *Admin) FetchJobPosts(ctx context.Context, q model.ListQuery) <-chan dispatch.Action {
	return a.d.Dispatch(ctx, store.ActAdminFetchJobPosts, func(ctx context.Context) (any, error) {
		var out model.List[model.JobPost]
		if err := a.api.GetJSON(ctx, "/admin/job-posts", q.Values(), &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// UpdateJobPost submits an admin job-post edit. A form with an attachment
// goes out multipart; the server always responds with the full entity.
func (a *Admin) UpdateJobPost(ctx context.Context, id uint, form *forms.JobPostForm) <-chan dispatch.Action {
	return a.d.Dispatch(ctx, store.ActAdminUpdateJobPost, func(ctx context.Context) (any, error) {
		contentType, body, err := form.Encode()
		if err != nil {
			return nil, err
		}
		var out model.JobPost
		path := fmt.Sprintf("/admin/job-posts/%d", id)
		if err := a.api.Do(ctx, http.MethodPatch, path, nil, contentType, body, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// DeleteJobPost removes a job post.
func (a *Admin) DeleteJobPost(ctx context.Context, id uint) <-chan dispatch.Action {
	return a.d.Dispatch(ctx, store.ActAdminDeleteJobPost, func(ctx context.Context) (any, error) {
		path := fmt.Sprintf("/admin/job-posts/%d", id)
		if err := a.api.SendJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
			return nil, err
		}
		return id, nil
	})
}

// FetchAnalytics loads the admin dashboard summary.
func (a *Admin) FetchAnalytics(ctx context.Context) <-chan dispatch.Action {
	return a.d.Dispatch(ctx, store.ActAdminFetchAnalytics, func(ctx context.Context) (any, error) {
		var out model.AdminAnalytics
		if err := a.api.GetJSON(ctx, "/admin/analytics", nil, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// FetchCategories loads the job category list.
func (a *Admin) FetchCategories(ctx context.Context) <-chan dispatch.Action {
	return a.d.Dispatch(ctx, store.ActAdminFetchCategories, func(ctx context.Context) (any, error) {
		var out []string
		if err := a.api.GetJSON(ctx, "/admin/categories", nil, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}
