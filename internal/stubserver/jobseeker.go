package stubserver

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"JobLane-client/internal/model"
)

type seekerProfileInput struct {
	FirstName string  `json:"first_name" binding:"required"`
	LastName  string  `json:"last_name"`
	Location  string  `json:"location"`
	Bio       string  `json:"bio"`
	Tel       *string `json:"tel"`
	Email     *string `json:"email"`
}

func (in seekerProfileInput) apply(p *model.JobSeekerProfile) {
	p.FirstName = in.FirstName
	p.LastName = in.LastName
	p.Location = in.Location
	p.Bio = in.Bio
	p.Tel = in.Tel
	p.ContactInfo.Email = in.Email
}

func (s *Server) seekerGetProfile(c *gin.Context) {
	user := extractUser(c)

	s.state.mu.Lock()
	profile, ok := s.state.seekerProfiles[user.ID]
	s.state.mu.Unlock()

	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (s *Server) seekerCreateProfile(c *gin.Context) {
	user := extractUser(c)

	var in seekerProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "First name must be provided"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, exists := s.state.seekerProfiles[user.ID]; exists {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Profile already exist"})
		return
	}

	profile := model.JobSeekerProfile{UserID: user.ID}
	in.apply(&profile)
	s.state.seekerProfiles[user.ID] = profile

	c.JSON(http.StatusCreated, profile)
}

func (s *Server) seekerUpdateProfile(c *gin.Context) {
	user := extractUser(c)

	var in seekerProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "First name must be provided"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	profile, ok := s.state.seekerProfiles[user.ID]
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Profile not found"})
		return
	}
	in.apply(&profile)
	s.state.seekerProfiles[user.ID] = profile

	c.JSON(http.StatusOK, profile)
}

func (s *Server) seekerDeleteProfile(c *gin.Context) {
	user := extractUser(c)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.seekerProfiles[user.ID]; !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Profile not found"})
		return
	}
	delete(s.state.seekerProfiles, user.ID)

	c.JSON(http.StatusOK, MessageResponse{Message: "Profile deleted"})
}

func (s *Server) seekerListResumes(c *gin.Context) {
	user := extractUser(c)

	s.state.mu.Lock()
	resumes := make([]model.Resume, 0)
	for _, r := range s.state.resumes {
		if r.OwnerID == user.ID {
			resumes = append(resumes, r)
		}
	}
	s.state.mu.Unlock()

	sort.Slice(resumes, func(i, j int) bool { return resumes[i].UploadedAt.Before(resumes[j].UploadedAt) })
	c.JSON(http.StatusOK, allOf(resumes))
}

// seekerUploadResume stores the multipart resume upload and returns the
// record bound to its display filename.
func (s *Server) seekerUploadResume(c *gin.Context) {
	user := extractUser(c)

	rawFile, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("Failed to retrieve file: %s", err.Error())})
		return
	}
	f, err := rawFile.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Cannot open file"})
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Cannot read file"})
		return
	}

	resume := model.Resume{
		ID:         uuid.New(),
		OwnerID:    user.ID,
		StoredName: uuid.NewString() + ".pdf",
		FileName:   rawFile.Filename,
		UploadedAt: time.Now(),
	}

	s.state.mu.Lock()
	s.state.resumes[resume.ID] = resume
	s.state.resumeContent[resume.ID] = content
	s.state.mu.Unlock()

	c.JSON(http.StatusCreated, resume)
}

// seekerGetResume serves the stored binary as a downloadable attachment.
func (s *Server) seekerGetResume(c *gin.Context) {
	user := extractUser(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid resume id"})
		return
	}

	s.state.mu.Lock()
	resume, ok := s.state.resumes[id]
	content := s.state.resumeContent[id]
	s.state.mu.Unlock()

	if !ok || resume.OwnerID != user.ID {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resume not found"})
		return
	}

	c.Writer.Header().Set("Content-Disposition", "attachment; filename="+resume.FileName)
	c.Data(http.StatusOK, "application/octet-stream", content)
}

func (s *Server) seekerDeleteResume(c *gin.Context) {
	user := extractUser(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid resume id"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	resume, ok := s.state.resumes[id]
	if !ok || resume.OwnerID != user.ID {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resume not found"})
		return
	}
	delete(s.state.resumes, id)
	delete(s.state.resumeContent, id)

	c.JSON(http.StatusOK, MessageResponse{Message: "Resume deleted"})
}

func (s *Server) seekerListSavedJobs(c *gin.Context) {
	user := extractUser(c)

	s.state.mu.Lock()
	saved := make([]model.SavedJob, 0)
	for _, sj := range s.state.savedJobs {
		if sj.OwnerID == user.ID {
			saved = append(saved, sj)
		}
	}
	s.state.mu.Unlock()

	sort.Slice(saved, func(i, j int) bool { return saved[i].SavedAt.Before(saved[j].SavedAt) })
	c.JSON(http.StatusOK, allOf(saved))
}

func (s *Server) seekerSaveJob(c *gin.Context) {
	user := extractUser(c)

	var body struct {
		JobID uint `json:"job_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Job id must be provided"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.jobPosts[body.JobID]; !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Job post not found"})
		return
	}
	for _, sj := range s.state.savedJobs {
		if sj.OwnerID == user.ID && sj.JobID == body.JobID {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Job already saved"})
			return
		}
	}

	saved := model.SavedJob{
		ID:      uuid.New(),
		JobID:   body.JobID,
		OwnerID: user.ID,
		SavedAt: time.Now(),
	}
	s.state.savedJobs[saved.ID] = saved

	c.JSON(http.StatusCreated, saved)
}

func (s *Server) seekerUnsaveJob(c *gin.Context) {
	user := extractUser(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid saved job id"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	saved, ok := s.state.savedJobs[id]
	if !ok || saved.OwnerID != user.ID {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Saved job not found"})
		return
	}
	delete(s.state.savedJobs, id)

	c.JSON(http.StatusOK, MessageResponse{Message: "Saved job removed"})
}

func (s *Server) seekerListApplications(c *gin.Context) {
	user := extractUser(c)

	s.state.mu.Lock()
	apps := make([]model.Application, 0)
	for _, a := range s.state.applications {
		if a.ApplicantID == user.ID {
			apps = append(apps, a)
		}
	}
	s.state.mu.Unlock()

	sort.Slice(apps, func(i, j int) bool { return apps[i].AppliedAt.Before(apps[j].AppliedAt) })
	c.JSON(http.StatusOK, allOf(apps))
}

func (s *Server) seekerSubmitApplication(c *gin.Context) {
	user := extractUser(c)

	var body struct {
		JobID    uint      `json:"job_id" binding:"required"`
		ResumeID uuid.UUID `json:"resume_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Job id and resume id must be provided"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.jobPosts[body.JobID]; !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Job post not found"})
		return
	}
	resume, ok := s.state.resumes[body.ResumeID]
	if !ok || resume.OwnerID != user.ID {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Resume not found"})
		return
	}
	for _, a := range s.state.applications {
		if a.ApplicantID == user.ID && a.JobID == body.JobID && a.Status != model.StatusWithdrawn {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "You have already applied to this job post"})
			return
		}
	}

	app := model.Application{
		ID:          uuid.New(),
		JobID:       body.JobID,
		ApplicantID: user.ID,
		ResumeID:    body.ResumeID,
		Status:      model.StatusPending,
		AppliedAt:   time.Now(),
	}
	s.state.applications[app.ID] = app

	c.JSON(http.StatusCreated, app)
}

// seekerWithdrawApplication marks the application withdrawn and returns it,
// rather than deleting the record.
func (s *Server) seekerWithdrawApplication(c *gin.Context) {
	user := extractUser(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid application id"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	app, ok := s.state.applications[id]
	if !ok || app.ApplicantID != user.ID {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Application not found"})
		return
	}
	app.Status = model.StatusWithdrawn
	s.state.applications[id] = app

	c.JSON(http.StatusOK, app)
}
