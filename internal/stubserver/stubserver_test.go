package stubserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"JobLane-client/internal/config"
	"JobLane-client/internal/model"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer() http.Handler {
	return New(config.Config{
		StubSecret:         "test-secret",
		RateLimitPerSecond: 1000,
	}).Router()
}

func doJSON(t *testing.T, router http.Handler, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func sessionCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func login(t *testing.T, router http.Handler, email string) *http.Cookie {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/auth/login",
		`{"email":"`+email+`","password":"`+SeedPassword+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	return sessionCookieFrom(t, rec)
}

func TestLogin_SetsCookieAndReturnsUser(t *testing.T) {
	router := newTestServer()

	rec := doJSON(t, router, http.MethodPost, "/auth/login",
		`{"email":"`+SeedAdminEmail+`","password":"`+SeedPassword+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var u model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	assert.Equal(t, SeedAdminEmail, u.Email)
	assert.Equal(t, model.RoleAdmin, u.Role)

	cookie := sessionCookieFrom(t, rec)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestLogin_WrongPassword(t *testing.T) {
	router := newTestServer()

	rec := doJSON(t, router, http.MethodPost, "/auth/login",
		`{"email":"`+SeedAdminEmail+`","password":"nope-nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Email or password is incorrect", resp.Error)
}

func TestRegister_Validation(t *testing.T) {
	router := newTestServer()

	// too-short password
	rec := doJSON(t, router, http.MethodPost, "/auth/register",
		`{"email":"a@b.c","password":"short","display_name":"A","role":"employer"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// admin accounts cannot self-register
	rec = doJSON(t, router, http.MethodPost, "/auth/register",
		`{"email":"a@b.c","password":"password123","display_name":"A","role":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// duplicate email
	rec = doJSON(t, router, http.MethodPost, "/auth/register",
		`{"email":"`+SeedJobSeeker+`","password":"password123","display_name":"A","role":"job_seeker"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMe_RequiresSession(t *testing.T) {
	router := newTestServer()

	rec := doJSON(t, router, http.MethodGet, "/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Not signed in", resp.Error)
}

func TestMe_WithSession(t *testing.T) {
	router := newTestServer()
	cookie := login(t, router, SeedJobSeeker)

	rec := doJSON(t, router, http.MethodGet, "/auth/me", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var u model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	assert.Equal(t, SeedJobSeeker, u.Email)
}

func TestMe_GarbageTokenRejected(t *testing.T) {
	router := newTestServer()

	rec := doJSON(t, router, http.MethodGet, "/auth/me", "",
		&http.Cookie{Name: sessionCookie, Value: "not-a-token"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoleGate(t *testing.T) {
	router := newTestServer()
	seekerCookie := login(t, router, SeedJobSeeker)

	rec := doJSON(t, router, http.MethodGet, "/admin/users", "", seekerCookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User doesn't have permission to access", resp.Error)

	adminCookie := login(t, router, SeedAdminEmail)
	rec = doJSON(t, router, http.MethodGet, "/admin/users", "", adminCookie)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSearch_PublicAndPaginated(t *testing.T) {
	router := newTestServer()

	rec := doJSON(t, router, http.MethodGet, "/job-posts/search?page=1&limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out model.List[model.JobPost]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out.Items, 1)
	assert.Equal(t, 1, out.Pagination.Page)
	assert.Equal(t, 2, out.Pagination.TotalPages)
}

func TestSearch_PastLastPageIsEmpty(t *testing.T) {
	router := newTestServer()

	rec := doJSON(t, router, http.MethodGet, "/job-posts/search?page=99", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out model.List[model.JobPost]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Empty(t, out.Items)
	assert.Equal(t, 99, out.Pagination.Page)
}

func TestGetJobPost_NotFound(t *testing.T) {
	router := newTestServer()

	rec := doJSON(t, router, http.MethodGet, "/job-posts/9999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSavedJobs_EnvelopeLimitMatchesItemCount(t *testing.T) {
	router := newTestServer()
	cookie := login(t, router, SeedJobSeeker)

	rec := doJSON(t, router, http.MethodPost, "/job-seeker/saved-jobs", `{"job_id":1}`, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/job-seeker/saved-jobs", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var out model.List[model.SavedJob]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Items, 1)
	assert.Equal(t, 1, out.Pagination.Limit)
	assert.Equal(t, 1, out.Pagination.TotalPages)
}

func TestApplications_EmptyEnvelopeStaysCoherent(t *testing.T) {
	router := newTestServer()
	cookie := login(t, router, SeedJobSeeker)

	rec := doJSON(t, router, http.MethodGet, "/job-seeker/applications", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var out model.List[model.Application]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Empty(t, out.Items)
	assert.Equal(t, 1, out.Pagination.Page)
	assert.Equal(t, 1, out.Pagination.Limit)
	assert.Equal(t, 1, out.Pagination.TotalPages)
}

func TestLoginRateLimiter(t *testing.T) {
	router := New(config.Config{
		StubSecret:         "test-secret",
		RateLimitPerSecond: 1,
	}).Router()

	body := `{"email":"` + SeedAdminEmail + `","password":"` + SeedPassword + `"}`
	first := doJSON(t, router, http.MethodPost, "/auth/login", body)
	require.Equal(t, http.StatusOK, first.Code)

	second := doJSON(t, router, http.MethodPost, "/auth/login", body)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
