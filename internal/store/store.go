// Package store holds the centralized client state: one container per
// resource domain, each with its entity collections, loading flag, and error
// message. All mutation happens inside Reduce; views read copies and never
// write state directly.
package store

import (
	"strings"
	"sync"

	"JobLane-client/internal/api"
	"JobLane-client/internal/dispatch"
)

// Action types. The prefix before "/" names the domain container the action
// belongs to.
const (
	ActAuthLogin    = "auth/login"
	ActAuthRegister = "auth/register"
	ActAuthLogout   = "auth/logout"
	ActAuthMe       = "auth/me"

	ActAdminFetchUsers      = "admin/fetchUsers"
	ActAdminFetchUser       = "admin/fetchUser"
	ActAdminUpdateUser      = "admin/updateUser"
	ActAdminDeleteUser      = "admin/deleteUser"
	ActAdminFetchJobPosts   = "admin/fetchJobPosts"
	ActAdminUpdateJobPost   = "admin/updateJobPost"
	ActAdminDeleteJobPost   = "admin/deleteJobPost"
	ActAdminFetchAnalytics  = "admin/fetchAnalytics"
	ActAdminFetchCategories = "admin/fetchCategories"

	ActEmployerFetchProfile  = "employer/fetchProfile"
	ActEmployerCreateProfile = "employer/createProfile"
	ActEmployerUpdateProfile = "employer/updateProfile"
	ActEmployerDeleteProfile = "employer/deleteProfile"
	ActEmployerUploadLogo    = "employer/uploadLogo"
	ActEmployerFetchJobs     = "employer/fetchJobs"
	ActEmployerCreateJob     = "employer/createJob"
	ActEmployerUpdateJob     = "employer/updateJob"
	ActEmployerDeleteJob     = "employer/deleteJob"
	ActEmployerFetchApplied  = "employer/fetchAppliedJobs"
	ActEmployerFetchStats    = "employer/fetchAnalytics"
	ActEmployerSetAppStatus  = "employer/updateApplicationStatus"

	ActSeekerFetchProfile   = "jobSeeker/fetchProfile"
	ActSeekerCreateProfile  = "jobSeeker/createProfile"
	ActSeekerUpdateProfile  = "jobSeeker/updateProfile"
	ActSeekerDeleteProfile  = "jobSeeker/deleteProfile"
	ActSeekerFetchResumes   = "jobSeeker/fetchResumes"
	ActSeekerUploadResume   = "jobSeeker/uploadResume"
	ActSeekerDeleteResume   = "jobSeeker/deleteResume"
	ActSeekerPreviewResume  = "jobSeeker/previewResume"
	ActSeekerFetchSaved     = "jobSeeker/fetchSavedJobs"
	ActSeekerSaveJob        = "jobSeeker/saveJob"
	ActSeekerUnsaveJob      = "jobSeeker/unsaveJob"
	ActSeekerFetchApps      = "jobSeeker/fetchApplications"
	ActSeekerSubmitApp      = "jobSeeker/submitApplication"
	ActSeekerWithdrawApp    = "jobSeeker/withdrawApplication"
	ActSeekerSearchJobs     = "jobSeeker/searchJobs"
	ActSeekerFetchJobDetail = "jobSeeker/fetchJobDetails"
)

// Store is the single shared mutable resource of the client. It implements
// dispatch.Reducer.
type Store struct {
	mu sync.Mutex

	auth      AuthState
	admin     AdminState
	employer  EmployerState
	jobSeeker JobSeekerState

	// newest terminal seq applied per action type; older ones are dropped
	applied map[string]uint64

	subs []chan struct{}
}

// New builds an empty store.
func New() *Store {
	return &Store{applied: make(map[string]uint64)}
}

// Subscribe returns a channel that receives a coalesced signal after every
// applied action. Intended for view-style consumers re-rendering from state.
func (s *Store) Subscribe() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan struct{}, 1)
	s.subs = append(s.subs, ch)
	return ch
}

// Reduce applies one action phase to the owning domain container.
func (s *Store) Reduce(act dispatch.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	domain := act.Type
	if i := strings.IndexByte(act.Type, '/'); i >= 0 {
		domain = act.Type[:i]
	}

	switch act.Phase {
	case dispatch.Pending:
		s.setLoading(domain, true)
		s.setError(domain, "")
	case dispatch.Rejected:
		if s.stale(act) {
			return
		}
		s.setLoading(domain, false)
		if act.Err != nil {
			s.setError(domain, act.Err.Message)
			// Auth failures invalidate the session everywhere.
			if act.Err.Kind == api.KindAuth {
				s.auth.User = nil
			}
		}
		if act.Type == ActAuthMe {
			s.auth.Checked = true
		}
	case dispatch.Fulfilled:
		if s.stale(act) {
			return
		}
		s.setLoading(domain, false)
		s.merge(act)
	}

	s.notify()
}

// stale reports whether a terminal action lost the race against a newer
// dispatch of the same type. Winners record their seq.
func (s *Store) stale(act dispatch.Action) bool {
	if act.Seq <= s.applied[act.Type] {
		return true
	}
	s.applied[act.Type] = act.Seq
	return false
}

func (s *Store) merge(act dispatch.Action) {
	switch {
	case strings.HasPrefix(act.Type, "auth/"):
		s.mergeAuth(act)
	case strings.HasPrefix(act.Type, "admin/"):
		s.mergeAdmin(act)
	case strings.HasPrefix(act.Type, "employer/"):
		s.mergeEmployer(act)
	case strings.HasPrefix(act.Type, "jobSeeker/"):
		s.mergeJobSeeker(act)
	}
}

func (s *Store) setLoading(domain string, v bool) {
	switch domain {
	case "auth":
		s.auth.Loading = v
	case "admin":
		s.admin.Loading = v
	case "employer":
		s.employer.Loading = v
	case "jobSeeker":
		s.jobSeeker.Loading = v
	}
}

func (s *Store) setError(domain, msg string) {
	switch domain {
	case "auth":
		s.auth.Error = msg
	case "admin":
		s.admin.Error = msg
	case "employer":
		s.employer.Error = msg
	case "jobSeeker":
		s.jobSeeker.Error = msg
	}
}

func (s *Store) notify() {
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// ClearSession wipes the auth container. Wired to the API client's
// auth-failure hook and to logout.
func (s *Store) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth.User = nil
	s.notify()
}

func removeByID[T any, K comparable](items []T, id K, key func(T) K) []T {
	out := items[:0]
	for _, it := range items {
		if key(it) != id {
			out = append(out, it)
		}
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
