package stubserver

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"JobLane-client/internal/model"
)

// Seed credentials for local development and tests.
const (
	SeedPassword    = "password123"
	SeedAdminEmail  = "admin@joblane.dev"
	SeedEmployer    = "employer@joblane.dev"
	SeedJobSeeker   = "seeker@joblane.dev"
)

// memory is the in-process state behind the stub API. One mutex guards
// everything; the stub favors simplicity over throughput.
type memory struct {
	mu sync.Mutex

	users     map[uuid.UUID]model.User
	passwords map[string]credential // keyed by email

	employerProfiles map[uuid.UUID]model.EmployerProfile
	seekerProfiles   map[uuid.UUID]model.JobSeekerProfile

	jobPosts  map[uint]model.JobPost
	nextJobID uint

	applications map[uuid.UUID]model.Application
	savedJobs    map[uuid.UUID]model.SavedJob

	resumes       map[uuid.UUID]model.Resume
	resumeContent map[uuid.UUID][]byte

	categories []string
}

type credential struct {
	userID uuid.UUID
	hash   []byte
}

func newMemory() *memory {
	return &memory{
		users:            make(map[uuid.UUID]model.User),
		passwords:        make(map[string]credential),
		employerProfiles: make(map[uuid.UUID]model.EmployerProfile),
		seekerProfiles:   make(map[uuid.UUID]model.JobSeekerProfile),
		jobPosts:         make(map[uint]model.JobPost),
		applications:     make(map[uuid.UUID]model.Application),
		savedJobs:        make(map[uuid.UUID]model.SavedJob),
		resumes:          make(map[uuid.UUID]model.Resume),
		resumeContent:    make(map[uuid.UUID][]byte),
		categories: []string{
			"engineering", "design", "marketing", "sales", "operations", "finance",
		},
	}
}

// addUser registers a user with a hashed password and returns it.
func (m *memory) addUser(email, password, displayName, role string) model.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash password: ", err)
	}
	u := model.User{
		ID:          uuid.New(),
		Email:       email,
		DisplayName: displayName,
		Role:        role,
	}
	m.users[u.ID] = u
	m.passwords[email] = credential{userID: u.ID, hash: hash}
	return u
}

// seed populates one account per role and a couple of job posts so the CLI
// and tests have something to talk to.
func (m *memory) seed() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.addUser(SeedAdminEmail, SeedPassword, "Site Admin", model.RoleAdmin)
	employer := m.addUser(SeedEmployer, SeedPassword, "Acme Hiring", model.RoleEmployer)
	m.addUser(SeedJobSeeker, SeedPassword, "Jordan Seeker", model.RoleJobSeeker)

	m.employerProfiles[employer.ID] = model.EmployerProfile{
		UserID:      employer.ID,
		CompanyName: "Acme Corp",
		Industry:    "engineering",
		Website:     "https://acme.example",
		Address:     "1 Acme Way",
		Description: "We build everything.",
	}

	for _, p := range []model.JobPost{
		{
			Title:            "Backend Engineer",
			Description:      "Own our API surface.",
			EmploymentType:   model.EmploymentFullTime,
			SalaryMin:        90000,
			SalaryMax:        130000,
			Location:         "Berlin",
			Category:         "engineering",
			Requirements:     []string{"Go", "SQL"},
			Responsibilities: []string{"Design endpoints", "Review code"},
			IsActive:         true,
		},
		{
			Title:            "Product Designer",
			Description:      "Shape the job-seeker experience.",
			EmploymentType:   model.EmploymentContract,
			SalaryMin:        60000,
			SalaryMax:        80000,
			Location:         "Remote",
			Category:         "design",
			Requirements:     []string{"Figma"},
			Responsibilities: []string{"Prototype flows"},
			IsActive:         true,
		},
	} {
		m.nextJobID++
		p.ID = m.nextJobID
		p.EmployerID = employer.ID
		p.PostTime = time.Now()
		m.jobPosts[p.ID] = p
	}
}

// sortedJobPosts returns all posts ordered by id for stable pagination.
func (m *memory) sortedJobPosts() []model.JobPost {
	posts := make([]model.JobPost, 0, len(m.jobPosts))
	for _, p := range m.jobPosts {
		posts = append(posts, p)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts
}

// sortedUsers returns all users ordered by email for stable pagination.
func (m *memory) sortedUsers() []model.User {
	users := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return users
}

// paginate slices a collection 1-based. Page defaults to 1, limit to 10; a
// page past the end yields an empty item list with correct metadata.
func paginate[T any](items []T, page, limit int) model.List[T] {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	totalPages := (len(items) + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * limit
	if start > len(items) {
		start = len(items)
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}

	return model.List[T]{
		Items:      append([]T{}, items[start:end]...),
		Pagination: model.Pagination{Page: page, TotalPages: totalPages, Limit: limit},
	}
}

// allOf wraps an unpaged collection in the list envelope as a single full
// page, keeping the limit metadata coherent with the item count.
func allOf[T any](items []T) model.List[T] {
	limit := len(items)
	if limit < 1 {
		limit = 1
	}
	return paginate(items, 1, limit)
}
