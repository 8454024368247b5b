package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *testServer) signupAdmin(t *testing.T, email string) string {
	t.Helper()
	w := s.do(http.MethodPost, "/api/v1/admin/signup", signupBody(email, "Abc#12"), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/v1/admin/signin", fmt.Sprintf(`{"email":%q,"password":"Abc#12"}`, email), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := decodeBody(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func (s *testServer) signupUser(t *testing.T, email string) string {
	t.Helper()
	w := s.do(http.MethodPost, "/api/v1/user/signup", signupBody(email, "Abc#12"), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/v1/user/signin", fmt.Sprintf(`{"email":%q,"password":"Abc#12"}`, email), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := decodeBody(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func (s *testServer) createCourse(t *testing.T, token, title string, price float64) string {
	t.Helper()
	body := fmt.Sprintf(`{"title":%q,"description":"about %s","price":%g}`, title, title, price)
	w := s.do(http.MethodPost, "/api/v1/admin/course", body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id, _ := decodeBody(t, w)["courseId"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestCourseCreateValidation(t *testing.T) {
	s := newTestServer()
	token := s.signupAdmin(t, "admin@b.com")

	tests := []struct {
		name string
		body string
	}{
		{"missing price", `{"title":"T","description":"D"}`},
		{"negative price", `{"title":"T","description":"D","price":-1}`},
		{"missing title", `{"description":"D","price":10}`},
		{"price wrong type", `{"title":"T","description":"D","price":"ten"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(http.MethodPost, "/api/v1/admin/course", tt.body, token)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Equal(t, "invalid_request", errorCode(t, w))
		})
	}

	// Zero is a legal price, distinct from a missing one.
	w := s.do(http.MethodPost, "/api/v1/admin/course", `{"title":"T","description":"D","price":0}`, token)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestCourseOwnershipScoping(t *testing.T) {
	s := newTestServer()
	tokenA := s.signupAdmin(t, "a@b.com")
	tokenB := s.signupAdmin(t, "b@b.com")

	courseID := s.createCourse(t, tokenA, "Go", 49)

	// Another admin cannot read, update or delete a course it does not own.
	w := s.do(http.MethodGet, "/api/v1/admin/course/"+courseID, "", tokenB)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodPut, "/api/v1/admin/course/"+courseID, `{"title":"X","description":"Y","price":1}`, tokenB)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodDelete, "/api/v1/admin/course/"+courseID, "", tokenB)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The owner still sees the original course untouched.
	w = s.do(http.MethodGet, "/api/v1/admin/course/"+courseID, "", tokenA)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	course := decodeBody(t, w)["course"].(map[string]interface{})
	assert.Equal(t, "Go", course["title"])
}

func TestCourseUpdateAndDelete(t *testing.T) {
	s := newTestServer()
	token := s.signupAdmin(t, "a@b.com")
	courseID := s.createCourse(t, token, "Go", 49)

	w := s.do(http.MethodPut, "/api/v1/admin/course/"+courseID, `{"title":"Go 2","description":"deeper","price":59,"imageUrl":"http://img"}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, courseID, decodeBody(t, w)["courseId"])

	w = s.do(http.MethodGet, "/api/v1/admin/course/"+courseID, "", token)
	require.Equal(t, http.StatusOK, w.Code)
	course := decodeBody(t, w)["course"].(map[string]interface{})
	assert.Equal(t, "Go 2", course["title"])
	assert.Equal(t, float64(59), course["price"])
	assert.Equal(t, "http://img", course["imageUrl"])

	w = s.do(http.MethodDelete, "/api/v1/admin/course/"+courseID, "", token)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/v1/admin/course/"+courseID, "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Deleting twice is a not-found, not an error.
	w = s.do(http.MethodDelete, "/api/v1/admin/course/"+courseID, "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCourseMalformedIDLooksLikeMissing(t *testing.T) {
	s := newTestServer()
	token := s.signupAdmin(t, "a@b.com")

	w := s.do(http.MethodGet, "/api/v1/admin/course/not-a-hex-id", "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", errorCode(t, w))
}

func TestBulkVersusAllListings(t *testing.T) {
	s := newTestServer()
	tokenA := s.signupAdmin(t, "a@b.com")
	tokenB := s.signupAdmin(t, "b@b.com")

	s.createCourse(t, tokenA, "Go", 49)
	s.createCourse(t, tokenB, "Rust", 59)

	w := s.do(http.MethodGet, "/api/v1/admin/course/bulk", "", tokenA)
	require.Equal(t, http.StatusOK, w.Code)
	mine := decodeBody(t, w)["courses"].([]interface{})
	require.Len(t, mine, 1)
	assert.Equal(t, "Go", mine[0].(map[string]interface{})["title"])

	w = s.do(http.MethodGet, "/api/v1/admin/courses/all", "", tokenA)
	require.Equal(t, http.StatusOK, w.Code)
	all := decodeBody(t, w)["courses"].([]interface{})
	assert.Len(t, all, 2)
}

func TestPreviewCaching(t *testing.T) {
	s := newTestServer()
	token := s.signupAdmin(t, "a@b.com")
	s.createCourse(t, token, "Go", 49)

	w := s.do(http.MethodGet, "/api/v1/course/preview", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decodeBody(t, w)["courses"], 1)
	callsAfterFirst := s.courses.findAllCalls

	// A warm cache serves the second request without touching the repository.
	w = s.do(http.MethodGet, "/api/v1/course/preview", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decodeBody(t, w)["courses"], 1)
	assert.Equal(t, callsAfterFirst, s.courses.findAllCalls)

	// A write invalidates the cache and the next preview sees the new course.
	s.createCourse(t, token, "Rust", 59)

	w = s.do(http.MethodGet, "/api/v1/course/preview", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["courses"], 2)
	assert.Greater(t, s.courses.findAllCalls, callsAfterFirst)
}

func TestDebugBypassesCache(t *testing.T) {
	s := newTestServer()
	token := s.signupAdmin(t, "a@b.com")
	s.createCourse(t, token, "Go", 49)

	// Warm the preview cache first.
	w := s.do(http.MethodGet, "/api/v1/course/preview", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	callsAfterPreview := s.courses.findAllCalls

	w = s.do(http.MethodGet, "/api/v1/course/debug", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["count"])
	assert.Greater(t, s.courses.findAllCalls, callsAfterPreview)
}

func TestAdminRoutesRejectMissingAndUserTokens(t *testing.T) {
	s := newTestServer()
	userToken := s.signupUser(t, "u@b.com")

	routes := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/api/v1/admin/course", `{"title":"T","description":"D","price":10}`},
		{http.MethodGet, "/api/v1/admin/course/bulk", ""},
		{http.MethodGet, "/api/v1/admin/courses/all", ""},
	}

	for _, r := range routes {
		w := s.do(r.method, r.path, r.body, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s without token", r.method, r.path)

		// A user-scope token is just as invalid on admin routes.
		w = s.do(r.method, r.path, r.body, userToken)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s with user token", r.method, r.path)
	}
}
