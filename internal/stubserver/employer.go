package stubserver

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"JobLane-client/internal/model"
)

type employerProfileInput struct {
	CompanyName string  `json:"company_name" binding:"required"`
	Industry    string  `json:"industry"`
	Website     string  `json:"website"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
	Tel         *string `json:"tel"`
	Email       *string `json:"email"`
}

func (in employerProfileInput) apply(p *model.EmployerProfile) {
	p.CompanyName = in.CompanyName
	p.Industry = in.Industry
	p.Website = in.Website
	p.Address = in.Address
	p.Description = in.Description
	p.Tel = in.Tel
	p.ContactInfo.Email = in.Email
}

func (s *Server) employerGetProfile(c *gin.Context) {
	user := extractUser(c)

	s.state.mu.Lock()
	profile, ok := s.state.employerProfiles[user.ID]
	s.state.mu.Unlock()

	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (s *Server) employerCreateProfile(c *gin.Context) {
	user := extractUser(c)

	var in employerProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Company name must be provided"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, exists := s.state.employerProfiles[user.ID]; exists {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Profile already exist"})
		return
	}

	profile := model.EmployerProfile{UserID: user.ID}
	in.apply(&profile)
	s.state.employerProfiles[user.ID] = profile

	c.JSON(http.StatusCreated, profile)
}

func (s *Server) employerUpdateProfile(c *gin.Context) {
	user := extractUser(c)

	var in employerProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Company name must be provided"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	profile, ok := s.state.employerProfiles[user.ID]
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Profile not found"})
		return
	}
	in.apply(&profile)
	s.state.employerProfiles[user.ID] = profile

	c.JSON(http.StatusOK, profile)
}

func (s *Server) employerDeleteProfile(c *gin.Context) {
	user := extractUser(c)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.employerProfiles[user.ID]; !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Profile not found"})
		return
	}
	delete(s.state.employerProfiles, user.ID)

	c.JSON(http.StatusOK, MessageResponse{Message: "Profile deleted"})
}

// employerUploadLogo stores the logo upload and returns the refreshed
// profile with its new URL reference.
func (s *Server) employerUploadLogo(c *gin.Context) {
	user := extractUser(c)

	rawFile, err := c.FormFile("company_logo")
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
	if _, err := io.ReadAll(f); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Cannot read file"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	profile, ok := s.state.employerProfiles[user.ID]
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Profile not found"})
		return
	}
	profile.LogoURL = storedFileURL()
	s.state.employerProfiles[user.ID] = profile

	c.JSON(http.StatusOK, profile)
}

func (s *Server) employerListJobs(c *gin.Context) {
	user := extractUser(c)

	s.state.mu.Lock()
	posts := s.state.sortedJobPosts()
	s.state.mu.Unlock()

	own := posts[:0]
	for _, p := range posts {
		if p.EmployerID == user.ID {
			own = append(own, p)
		}
	}

	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	c.JSON(http.StatusOK, paginate(own, page, limit))
}

func (s *Server) employerCreateJob(c *gin.Context) {
	user := extractUser(c)

	in, image, err := bindJobPostInput(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if err := in.validate(); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	s.state.nextJobID++
	post := model.JobPost{
		ID:         s.state.nextJobID,
		EmployerID: user.ID,
		PostTime:   time.Now(),
		IsActive:   true,
	}
	in.apply(&post)
	if image != nil {
		post.ImageURLs = []string{storedFileURL()}
	}
	s.state.jobPosts[post.ID] = post

	c.JSON(http.StatusCreated, post)
}

func (s *Server) employerUpdateJob(c *gin.Context) {
	user := extractUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid job post id"})
		return
	}

	in, image, err := bindJobPostInput(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if err := in.validate(); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	post, ok := s.state.jobPosts[uint(id)]
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Job post not found"})
		return
	}
	if post.EmployerID != user.ID {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "You are not allowed to edit this job post"})
		return
	}
	in.apply(&post)
	if image != nil {
		post.ImageURLs = []string{storedFileURL()}
	}
	s.state.jobPosts[post.ID] = post

	c.JSON(http.StatusOK, post)
}

func (s *Server) employerDeleteJob(c *gin.Context) {
	user := extractUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid job post id"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	post, ok := s.state.jobPosts[uint(id)]
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Job post not found"})
		return
	}
	if post.EmployerID != user.ID {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "You are not allowed to delete this job post"})
		return
	}
	delete(s.state.jobPosts, post.ID)

	c.JSON(http.StatusOK, MessageResponse{Message: "Job post deleted"})
}

// employerAppliedJobs lists applications received across the employer's
// posts, newest first.
func (s *Server) employerAppliedJobs(c *gin.Context) {
	user := extractUser(c)

	s.state.mu.Lock()
	apps := make([]model.Application, 0)
	for _, a := range s.state.applications {
		post, ok := s.state.jobPosts[a.JobID]
		if ok && post.EmployerID == user.ID {
			apps = append(apps, a)
		}
	}
	s.state.mu.Unlock()

	sort.Slice(apps, func(i, j int) bool { return apps[i].AppliedAt.After(apps[j].AppliedAt) })

	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	c.JSON(http.StatusOK, paginate(apps, page, limit))
}

func (s *Server) employerAnalytics(c *gin.Context) {
	user := extractUser(c)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	stats := model.EmployerAnalytics{ApplicationsByStatus: make(map[string]int)}
	for _, p := range s.state.jobPosts {
		if p.EmployerID != user.ID {
			continue
		}
		stats.TotalJobs++
		if p.IsActive {
			stats.ActiveJobs++
		}
	}
	for _, a := range s.state.applications {
		post, ok := s.state.jobPosts[a.JobID]
		if ok && post.EmployerID == user.ID {
			stats.TotalApplications++
			stats.ApplicationsByStatus[a.Status]++
		}
	}

	c.JSON(http.StatusOK, stats)
}

// employerSetApplicationStatus moves an application on one of the
// employer's posts to a new status.
func (s *Server) employerSetApplicationStatus(c *gin.Context) {
	user := extractUser(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid application id"})
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Status must be provided"})
		return
	}
	if !model.ValidApplicationStatus(body.Status) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("Status '%s' not allowed", body.Status)})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	app, ok := s.state.applications[id]
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Application not found"})
		return
	}
	post, ok := s.state.jobPosts[app.JobID]
	if !ok || post.EmployerID != user.ID {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "You are not allowed to update this application"})
		return
	}
	app.Status = body.Status
	s.state.applications[id] = app

	c.JSON(http.StatusOK, app)
}
