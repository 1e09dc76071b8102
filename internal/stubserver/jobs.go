package stubserver

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"JobLane-client/internal/model"
)

type jobPostInput struct {
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	EmploymentType      string     `json:"employment_type"`
	SalaryMin           int        `json:"salary_min"`
	SalaryMax           int        `json:"salary_max"`
	Location            string     `json:"location"`
	Address             string     `json:"address"`
	Category            string     `json:"category"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	IsActive            *bool      `json:"is_active"`
	Requirements        []string   `json:"requirements"`
	Responsibilities    []string   `json:"responsibilities"`
}

// bindJobPostInput accepts either a JSON body or a multipart form where the
// two list fields arrive as JSON text and the optional file rides under
// "post_image". Returns the parsed fields and the uploaded image bytes.
func bindJobPostInput(c *gin.Context) (jobPostInput, []byte, error) {
	var in jobPostInput

	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBindJSON(&in); err != nil {
			return in, nil, fmt.Errorf("invalid request body: %w", err)
		}
		return in, nil, nil
	}

	in.Title = c.PostForm("title")
	in.Description = c.PostForm("description")
	in.EmploymentType = c.PostForm("employment_type")
	in.Location = c.PostForm("location")
	in.Address = c.PostForm("address")
	in.Category = c.PostForm("category")
	in.SalaryMin, _ = strconv.Atoi(c.PostForm("salary_min"))
	in.SalaryMax, _ = strconv.Atoi(c.PostForm("salary_max"))

	if v := c.PostForm("is_active"); v != "" {
		active := v == "true"
		in.IsActive = &active
	}
	if v := c.PostForm("application_deadline"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return in, nil, fmt.Errorf("invalid application_deadline: %w", err)
		}
		in.ApplicationDeadline = &t
	}

	for field, dst := range map[string]*[]string{
		"requirements":     &in.Requirements,
		"responsibilities": &in.Responsibilities,
	} {
		if v := c.PostForm(field); v != "" {
			if err := json.Unmarshal([]byte(v), dst); err != nil {
				return in, nil, fmt.Errorf("invalid %s: %w", field, err)
			}
		}
	}

	rawFile, err := c.FormFile("post_image")
	if err != nil {
		// No file attached is fine for multipart edits.
		return in, nil, nil
	}
	f, err := rawFile.Open()
	if err != nil {
		return in, nil, fmt.Errorf("cannot open file: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return in, nil, fmt.Errorf("cannot read file: %w", err)
	}
	return in, content, nil
}

// apply copies the submitted fields onto the post. Image bytes are stored
// elsewhere; only the URL reference lands on the entity.
func (in jobPostInput) apply(post *model.JobPost) {
	post.Title = in.Title
	post.Description = in.Description
	post.EmploymentType = in.EmploymentType
	post.SalaryMin = in.SalaryMin
	post.SalaryMax = in.SalaryMax
	post.Location = in.Location
	post.Address = in.Address
	post.Category = in.Category
	post.ApplicationDeadline = in.ApplicationDeadline
	post.Requirements = in.Requirements
	post.Responsibilities = in.Responsibilities
	if in.IsActive != nil {
		post.IsActive = *in.IsActive
	}
}

func (in jobPostInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("title must be provided")
	}
	if in.EmploymentType != "" && !model.ValidEmploymentType(in.EmploymentType) {
		return fmt.Errorf("employment type '%s' not allowed", in.EmploymentType)
	}
	return nil
}

// searchJobPosts filters and paginates active listings.
func (s *Server) searchJobPosts(c *gin.Context) {
	rawTitle := c.Query("title")
	rawLocation := c.Query("location")
	rawCategory := c.Query("category")
	rawType := c.Query("employment_type")
	rawSalaryMin := c.Query("salary_min")
	rawSalaryMax := c.Query("salary_max")
	rawActive := c.Query("is_active")

	s.state.mu.Lock()
	posts := s.state.sortedJobPosts()
	s.state.mu.Unlock()

	filtered := posts[:0]
	for _, p := range posts {
		if rawTitle != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(rawTitle)) {
			continue
		}
		if rawLocation != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(rawLocation)) {
			continue
		}
		if rawCategory != "" && p.Category != rawCategory {
			continue
		}
		if rawType != "" && p.EmploymentType != rawType {
			continue
		}
		if rawSalaryMin != "" {
			if min, err := strconv.Atoi(rawSalaryMin); err == nil && p.SalaryMax < min {
				continue
			}
		}
		if rawSalaryMax != "" {
			if max, err := strconv.Atoi(rawSalaryMax); err == nil && p.SalaryMin > max {
				continue
			}
		}
		if rawActive != "" && strconv.FormatBool(p.IsActive) != rawActive {
			continue
		}
		filtered = append(filtered, p)
	}

	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	c.JSON(http.StatusOK, paginate(filtered, page, limit))
}

// getJobPost returns one listing by id.
func (s *Server) getJobPost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid job post id"})
		return
	}

	s.state.mu.Lock()
	post, ok := s.state.jobPosts[uint(id)]
	s.state.mu.Unlock()

	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Job post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// storedFileURL fabricates the URL reference a stored upload gets.
func storedFileURL() string {
	return "/files/" + uuid.NewString()
}
