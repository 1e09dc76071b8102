// Package stubserver implements the job-board REST surface in memory. It
// exists for the client's tests, the CLI demos, and local development; it is
// not a production server.
package stubserver

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"JobLane-client/internal/config"
	"JobLane-client/internal/model"
)

const maxUploadBytes = 10 << 20

// Server holds the stub's signing secret and in-memory state.
type Server struct {
	secret string
	rate   uint
	state  *memory
}

// New builds a seeded stub server.
func New(cfg config.Config) *Server {
	state := newMemory()
	state.seed()

	rate := uint(5)
	if cfg.RateLimitPerSecond > 0 {
		rate = uint(cfg.RateLimitPerSecond)
	}

	return &Server{
		secret: cfg.StubSecret,
		rate:   rate,
		state:  state,
	}
}

// Router registers every endpoint route and returns the handler.
func (s *Server) Router() http.Handler {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	authRoute := r.Group("/auth")
	{
		limited := authRoute.Group("", loginRateLimiter(s.rate))
		limited.POST("login", s.loginHandler)
		limited.POST("register", s.registerHandler)
	}

	// Public job search, also used by the signed-out home view.
	r.GET("/job-posts/search", s.searchJobPosts)
	r.GET("/job-posts/:id", s.getJobPost)

	needAuth := r.Group("", s.requireAuth())
	{
		needAuth.POST("/auth/logout", s.logoutHandler)
		needAuth.GET("/auth/me", s.meHandler)

		adminRoute := needAuth.Group("/admin", checkRole(model.RoleAdmin))
		{
			adminRoute.GET("users", s.adminListUsers)
			adminRoute.GET("users/:id", s.adminGetUser)
			adminRoute.PATCH("users/:id", s.adminUpdateUser)
			adminRoute.DELETE("users/:id", s.adminDeleteUser)

			adminRoute.GET("job-posts", s.adminListJobPosts)
			adminRoute.PATCH("job-posts/:id", sizeLimit(maxUploadBytes), s.adminUpdateJobPost)
			adminRoute.DELETE("job-posts/:id", s.adminDeleteJobPost)

			adminRoute.GET("analytics", s.adminAnalytics)
			adminRoute.GET("categories", s.adminCategories)
		}

		employerRoute := needAuth.Group("/employer", checkRole(model.RoleEmployer))
		{
			employerRoute.GET("profile", s.employerGetProfile)
			employerRoute.POST("profile", s.employerCreateProfile)
			employerRoute.PUT("profile", s.employerUpdateProfile)
			employerRoute.DELETE("profile", s.employerDeleteProfile)
			employerRoute.POST("profile/logo", sizeLimit(maxUploadBytes), s.employerUploadLogo)

			employerRoute.GET("jobs", s.employerListJobs)
			employerRoute.POST("jobs", sizeLimit(maxUploadBytes), s.employerCreateJob)
			employerRoute.PUT("jobs/:id", sizeLimit(maxUploadBytes), s.employerUpdateJob)
			employerRoute.DELETE("jobs/:id", s.employerDeleteJob)

			employerRoute.GET("applied-jobs", s.employerAppliedJobs)
			employerRoute.GET("analytics", s.employerAnalytics)
			employerRoute.PUT("applications/:id/status", s.employerSetApplicationStatus)
		}

		seekerRoute := needAuth.Group("/job-seeker", checkRole(model.RoleJobSeeker))
		{
			seekerRoute.GET("profile", s.seekerGetProfile)
			seekerRoute.POST("profile", s.seekerCreateProfile)
			seekerRoute.PUT("profile", s.seekerUpdateProfile)
			seekerRoute.DELETE("profile", s.seekerDeleteProfile)

			seekerRoute.GET("resumes", s.seekerListResumes)
			seekerRoute.POST("resumes", sizeLimit(maxUploadBytes), s.seekerUploadResume)
			seekerRoute.GET("resumes/:id", s.seekerGetResume)
			seekerRoute.DELETE("resumes/:id", s.seekerDeleteResume)

			seekerRoute.GET("saved-jobs", s.seekerListSavedJobs)
			seekerRoute.POST("saved-jobs", s.seekerSaveJob)
			seekerRoute.DELETE("saved-jobs/:id", s.seekerUnsaveJob)

			seekerRoute.GET("applications", s.seekerListApplications)
			seekerRoute.POST("applications", s.seekerSubmitApplication)
			seekerRoute.DELETE("applications/:id", s.seekerWithdrawApplication)
		}
	}

	return r
}
