package store

import (
	"github.com/google/uuid"

	"JobLane-client/internal/dispatch"
	"JobLane-client/internal/model"
)

// ResumePreview is the on-demand binary fetched for one stored resume. It
// lives in state only while the preview is open.
type ResumePreview struct {
	ResumeID uuid.UUID
	FileName string
	Content  []byte
}

// JobSeekerState backs the job-seeker dashboard: profile singleton, search
// results, job details, resumes, saved jobs, and applications.
type JobSeekerState struct {
	Profile *model.JobSeekerProfile

	SearchResults    []model.JobPost
	SearchPagination model.Pagination
	JobDetails       *model.JobPost

	Resumes []model.Resume
	Preview *ResumePreview

	SavedJobs    []model.SavedJob
	Applications []model.Application

	Loading bool
	Error   string
}

// JobSeeker returns a copy of the job-seeker container.
func (s *Store) JobSeeker() JobSeekerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.jobSeeker
	out.SearchResults = cloneSlice(s.jobSeeker.SearchResults)
	out.Resumes = cloneSlice(s.jobSeeker.Resumes)
	out.SavedJobs = cloneSlice(s.jobSeeker.SavedJobs)
	out.Applications = cloneSlice(s.jobSeeker.Applications)
	if s.jobSeeker.Profile != nil {
		p := *s.jobSeeker.Profile
		out.Profile = &p
	}
	if s.jobSeeker.JobDetails != nil {
		j := *s.jobSeeker.JobDetails
		out.JobDetails = &j
	}
	if s.jobSeeker.Preview != nil {
		pv := *s.jobSeeker.Preview
		pv.Content = cloneSlice(s.jobSeeker.Preview.Content)
		out.Preview = &pv
	}
	return out
}

// ClearResumePreview closes an open preview and drops the fetched binary.
// This is the only local (non-network) state transition the UI performs.
func (s *Store) ClearResumePreview() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobSeeker.Preview = nil
	s.notify()
}

func (s *Store) mergeJobSeeker(act dispatch.Action) {
	switch act.Type {
	case ActSeekerFetchProfile, ActSeekerCreateProfile, ActSeekerUpdateProfile:
		if p, ok := act.Payload.(model.JobSeekerProfile); ok {
			s.jobSeeker.Profile = &p
		}
	case ActSeekerDeleteProfile:
		s.jobSeeker.Profile = nil
	case ActSeekerSearchJobs:
		if l, ok := act.Payload.(model.List[model.JobPost]); ok {
			s.jobSeeker.SearchResults = l.Items
			s.jobSeeker.SearchPagination = l.Pagination
		}
	case ActSeekerFetchJobDetail:
		if p, ok := act.Payload.(model.JobPost); ok {
			s.jobSeeker.JobDetails = &p
		}
	case ActSeekerFetchResumes:
		if l, ok := act.Payload.(model.List[model.Resume]); ok {
			s.jobSeeker.Resumes = l.Items
		}
	case ActSeekerUploadResume:
		if r, ok := act.Payload.(model.Resume); ok {
			s.jobSeeker.Resumes = append(s.jobSeeker.Resumes, r)
		}
	case ActSeekerDeleteResume:
		if id, ok := act.Payload.(uuid.UUID); ok {
			s.jobSeeker.Resumes = removeByID(s.jobSeeker.Resumes, id, func(r model.Resume) uuid.UUID { return r.ID })
			if s.jobSeeker.Preview != nil && s.jobSeeker.Preview.ResumeID == id {
				s.jobSeeker.Preview = nil
			}
		}
	case ActSeekerPreviewResume:
		if pv, ok := act.Payload.(ResumePreview); ok {
			s.jobSeeker.Preview = &pv
		}
	case ActSeekerFetchSaved:
		if l, ok := act.Payload.(model.List[model.SavedJob]); ok {
			s.jobSeeker.SavedJobs = l.Items
		}
	case ActSeekerSaveJob:
		if sj, ok := act.Payload.(model.SavedJob); ok {
			s.jobSeeker.SavedJobs = append(s.jobSeeker.SavedJobs, sj)
		}
	case ActSeekerUnsaveJob:
		if id, ok := act.Payload.(uuid.UUID); ok {
			s.jobSeeker.SavedJobs = removeByID(s.jobSeeker.SavedJobs, id, func(sj model.SavedJob) uuid.UUID { return sj.ID })
		}
	case ActSeekerFetchApps:
		if l, ok := act.Payload.(model.List[model.Application]); ok {
			s.jobSeeker.Applications = l.Items
		}
	case ActSeekerSubmitApp:
		if a, ok := act.Payload.(model.Application); ok {
			s.jobSeeker.Applications = append(s.jobSeeker.Applications, a)
		}
	case ActSeekerWithdrawApp:
		if a, ok := act.Payload.(model.Application); ok {
			for i := range s.jobSeeker.Applications {
				if s.jobSeeker.Applications[i].ID == a.ID {
					s.jobSeeker.Applications[i] = a
				}
			}
		}
	}
}
