package store

import (
	"github.com/google/uuid"

	"JobLane-client/internal/dispatch"
	"JobLane-client/internal/model"
)

// AdminState backs the admin dashboard: paged user and job-post management
// plus the analytics summary and the category list.
type AdminState struct {
	Users           []model.User
	UsersPagination model.Pagination

	SelectedUser *model.User

	JobPosts        []model.JobPost
	JobsPagination  model.Pagination

	Analytics  *model.AdminAnalytics
	Categories []string

	Loading bool
	Error   string
}

// Admin returns a copy of the admin container.
func (s *Store) Admin() AdminState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.admin
	out.Users = cloneSlice(s.admin.Users)
	out.JobPosts = cloneSlice(s.admin.JobPosts)
	out.Categories = cloneSlice(s.admin.Categories)
	if s.admin.SelectedUser != nil {
		u := *s.admin.SelectedUser
		out.SelectedUser = &u
	}
	if s.admin.Analytics != nil {
		a := *s.admin.Analytics
		out.Analytics = &a
	}
	return out
}

func (s *Store) mergeAdmin(act dispatch.Action) {
	switch act.Type {
	case ActAdminFetchUsers:
		if l, ok := act.Payload.(model.List[model.User]); ok {
			s.admin.Users = l.Items
			s.admin.UsersPagination = l.Pagination
		}
	case ActAdminFetchUser:
		if u, ok := act.Payload.(model.User); ok {
			s.admin.SelectedUser = &u
		}
	case ActAdminUpdateUser:
		if u, ok := act.Payload.(model.User); ok {
			for i := range s.admin.Users {
				if s.admin.Users[i].ID == u.ID {
					s.admin.Users[i] = u
				}
			}
			if s.admin.SelectedUser != nil && s.admin.SelectedUser.ID == u.ID {
				s.admin.SelectedUser = &u
			}
		}
	case ActAdminDeleteUser:
		if id, ok := act.Payload.(uuid.UUID); ok {
			s.admin.Users = removeByID(s.admin.Users, id, func(u model.User) uuid.UUID { return u.ID })
			if s.admin.SelectedUser != nil && s.admin.SelectedUser.ID == id {
				s.admin.SelectedUser = nil
			}
		}
	case ActAdminFetchJobPosts:
		if l, ok := act.Payload.(model.List[model.JobPost]); ok {
			s.admin.JobPosts = l.Items
			s.admin.JobsPagination = l.Pagination
		}
	case ActAdminUpdateJobPost:
		if p, ok := act.Payload.(model.JobPost); ok {
			patchJobPost(s.admin.JobPosts, p)
		}
	case ActAdminDeleteJobPost:
		if id, ok := act.Payload.(uint); ok {
			s.admin.JobPosts = removeByID(s.admin.JobPosts, id, func(p model.JobPost) uint { return p.ID })
		}
	case ActAdminFetchAnalytics:
		if a, ok := act.Payload.(model.AdminAnalytics); ok {
			s.admin.Analytics = &a
		}
	case ActAdminFetchCategories:
		if cats, ok := act.Payload.([]string); ok {
			s.admin.Categories = cats
		}
	}
}

// patchJobPost shallow-merges an updated post into the collection by id.
// Image URLs stay as previously known when the update carries none, so the
// display keeps the old reference until the next full list refresh.
func patchJobPost(posts []model.JobPost, updated model.JobPost) {
	for i := range posts {
		if posts[i].ID != updated.ID {
			continue
		}
		if len(updated.ImageURLs) == 0 {
			updated.ImageURLs = posts[i].ImageURLs
		}
		posts[i] = updated
	}
}
