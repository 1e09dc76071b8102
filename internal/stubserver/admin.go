package stubserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"JobLane-client/internal/model"
)

// adminListUsers returns one page of users, optionally filtered by role.
func (s *Server) adminListUsers(c *gin.Context) {
	rawRole := c.Query("role")

	s.state.mu.Lock()
	users := s.state.sortedUsers()
	s.state.mu.Unlock()

	filtered := users[:0]
	for _, u := range users {
		if rawRole != "" && u.Role != rawRole {
			continue
		}
		filtered = append(filtered, u)
	}

	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	c.JSON(http.StatusOK, paginate(filtered, page, limit))
}

func (s *Server) adminGetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user id"})
		return
	}

	s.state.mu.Lock()
	user, ok := s.state.users[id]
	s.state.mu.Unlock()

	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// adminUpdateUser patches the editable user fields and returns the full
// updated entity.
func (s *Server) adminUpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user id"})
		return
	}

	var fields struct {
		Email       *string `json:"email"`
		DisplayName *string `json:"display_name"`
		Role        *string `json:"role"`
	}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	user, ok := s.state.users[id]
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		return
	}
	if fields.Email != nil {
		user.Email = *fields.Email
	}
	if fields.DisplayName != nil {
		user.DisplayName = *fields.DisplayName
	}
	if fields.Role != nil {
		user.Role = *fields.Role
	}
	s.state.users[id] = user

	c.JSON(http.StatusOK, user)
}

func (s *Server) adminDeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user id"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.users[id]; !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		return
	}
	delete(s.state.users, id)
	for email, cred := range s.state.passwords {
		if cred.userID == id {
			delete(s.state.passwords, email)
		}
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "User deleted"})
}

// adminListJobPosts returns one page of posts across all employers.
func (s *Server) adminListJobPosts(c *gin.Context) {
	rawActive := c.Query("is_active")
	rawCategory := c.Query("category")

	s.state.mu.Lock()
	posts := s.state.sortedJobPosts()
	s.state.mu.Unlock()

	filtered := posts[:0]
	for _, p := range posts {
		if rawActive != "" && strconv.FormatBool(p.IsActive) != rawActive {
			continue
		}
		if rawCategory != "" && p.Category != rawCategory {
			continue
		}
		filtered = append(filtered, p)
	}

	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	c.JSON(http.StatusOK, paginate(filtered, page, limit))
}

// adminUpdateJobPost lets an admin edit any post. Accepts JSON or multipart
// and always responds with the full updated entity.
func (s *Server) adminUpdateJobPost(c *gin.Context) {
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
	in.apply(&post)
	if image != nil {
		post.ImageURLs = []string{storedFileURL()}
	}
	s.state.jobPosts[post.ID] = post

	c.JSON(http.StatusOK, post)
}

func (s *Server) adminDeleteJobPost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid job post id"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.jobPosts[uint(id)]; !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Job post not found"})
		return
	}
	delete(s.state.jobPosts, uint(id))

	c.JSON(http.StatusOK, MessageResponse{Message: "Job post deleted"})
}

func (s *Server) adminAnalytics(c *gin.Context) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	active := 0
	for _, p := range s.state.jobPosts {
		if p.IsActive {
			active++
		}
	}

	c.JSON(http.StatusOK, model.AdminAnalytics{
		TotalUsers:        len(s.state.users),
		TotalJobPosts:     len(s.state.jobPosts),
		ActiveJobPosts:    active,
		TotalApplications: len(s.state.applications),
	})
}

func (s *Server) adminCategories(c *gin.Context) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	c.JSON(http.StatusOK, s.state.categories)
}
