package store

import (
	"JobLane-client/internal/dispatch"
	"JobLane-client/internal/model"
)

// EmployerState backs the employer dashboard: the profile singleton, owned
// job posts, received applications, and analytics.
type EmployerState struct {
	Profile *model.EmployerProfile

	Jobs           []model.JobPost
	JobsPagination model.Pagination

	Applications       []model.Application
	AppsPagination     model.Pagination

	Analytics *model.EmployerAnalytics

	Loading bool
	Error   string
}

// Employer returns a copy of the employer container.
func (s *Store) Employer() EmployerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.employer
	out.Jobs = cloneSlice(s.employer.Jobs)
	out.Applications = cloneSlice(s.employer.Applications)
	if s.employer.Profile != nil {
		p := *s.employer.Profile
		out.Profile = &p
	}
	if s.employer.Analytics != nil {
		a := *s.employer.Analytics
		out.Analytics = &a
	}
	return out
}

func (s *Store) mergeEmployer(act dispatch.Action) {
	switch act.Type {
	case ActEmployerFetchProfile, ActEmployerCreateProfile, ActEmployerUpdateProfile, ActEmployerUploadLogo:
		if p, ok := act.Payload.(model.EmployerProfile); ok {
			s.employer.Profile = &p
		}
	case ActEmployerDeleteProfile:
		s.employer.Profile = nil
	case ActEmployerFetchJobs:
		if l, ok := act.Payload.(model.List[model.JobPost]); ok {
			s.employer.Jobs = l.Items
			s.employer.JobsPagination = l.Pagination
		}
	case ActEmployerCreateJob:
		if p, ok := act.Payload.(model.JobPost); ok {
			s.employer.Jobs = append(s.employer.Jobs, p)
		}
	case ActEmployerUpdateJob:
		if p, ok := act.Payload.(model.JobPost); ok {
			patchJobPost(s.employer.Jobs, p)
		}
	case ActEmployerDeleteJob:
		if id, ok := act.Payload.(uint); ok {
			s.employer.Jobs = removeByID(s.employer.Jobs, id, func(p model.JobPost) uint { return p.ID })
		}
	case ActEmployerFetchApplied:
		if l, ok := act.Payload.(model.List[model.Application]); ok {
			s.employer.Applications = l.Items
			s.employer.AppsPagination = l.Pagination
		}
	case ActEmployerSetAppStatus:
		if a, ok := act.Payload.(model.Application); ok {
			for i := range s.employer.Applications {
				if s.employer.Applications[i].ID == a.ID {
					s.employer.Applications[i] = a
				}
			}
		}
	case ActEmployerFetchStats:
		if a, ok := act.Payload.(model.EmployerAnalytics); ok {
			s.employer.Analytics = &a
		}
	}
}
