package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/coursify/coursify-backend/internal/cache"
	"github.com/coursify/coursify-backend/internal/middleware"
	"github.com/coursify/coursify-backend/internal/models"
	"github.com/coursify/coursify-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const previewCacheKey = "courses:preview"

// CourseHandler handles admin course management and the public listings.
type CourseHandler struct {
	courses services.CourseService
	cache   cache.Store
	log     *slog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courses services.CourseService, store cache.Store, log *slog.Logger) *CourseHandler {
	return &CourseHandler{
		courses: courses,
		cache:   store,
		log:     log,
	}
}

// Create handles POST /admin/course
func (h *CourseHandler) Create(c *gin.Context) {
	adminID, ok := middleware.SubjectIDFromContext(c)
	if !ok {
		RespondUnauthorized(c, "Invalid token")
		return
	}

	var req models.CourseRequest
	if !BindJSON(c, &req) {
		return
	}

	course, err := h.courses.Create(c.Request.Context(), adminID, &req)
	if err != nil {
		RespondInternal(c, "Something went wrong while creating course")
		return
	}

	h.invalidatePreview(c)

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Course created successfully",
		"courseId": course.ID.Hex(),
	})
}

// Update handles PUT /admin/course/:id
func (h *CourseHandler) Update(c *gin.Context) {
	adminID, ok := middleware.SubjectIDFromContext(c)
	if !ok {
		RespondUnauthorized(c, "Invalid token")
		return
	}

	courseID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		// A malformed id gets the same answer as a course the admin does
		// not own.
		RespondNotFound(c, "Course not found")
		return
	}

	var req models.CourseRequest
	if !BindJSON(c, &req) {
		return
	}

	course, err := h.courses.Update(c.Request.Context(), courseID, adminID, &req)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			RespondNotFound(c, "Course not found")
			return
		}
		RespondInternal(c, "Something went wrong while updating course")
		return
	}

	h.invalidatePreview(c)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Course updated successfully",
		"courseId": course.ID.Hex(),
	})
}

// Get handles GET /admin/course/:id
func (h *CourseHandler) Get(c *gin.Context) {
	adminID, ok := middleware.SubjectIDFromContext(c)
	if !ok {
		RespondUnauthorized(c, "Invalid token")
		return
	}

	courseID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		RespondNotFound(c, "Course not found")
		return
	}

	course, err := h.courses.GetOwned(c.Request.Context(), courseID, adminID)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			RespondNotFound(c, "Course not found")
			return
		}
		RespondInternal(c, "Something went wrong while fetching course")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"course": course,
	})
}

// Delete handles DELETE /admin/course/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	adminID, ok := middleware.SubjectIDFromContext(c)
	if !ok {
		RespondUnauthorized(c, "Invalid token")
		return
	}

	courseID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		RespondNotFound(c, "Course not found")
		return
	}

	if err := h.courses.Delete(c.Request.Context(), courseID, adminID); err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			RespondNotFound(c, "Course not found")
			return
		}
		RespondInternal(c, "Something went wrong while deleting course")
		return
	}

	h.invalidatePreview(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Course deleted successfully",
	})
}

// ListMine handles GET /admin/course/bulk
func (h *CourseHandler) ListMine(c *gin.Context) {
	adminID, ok := middleware.SubjectIDFromContext(c)
	if !ok {
		RespondUnauthorized(c, "Invalid token")
		return
	}

	courses, err := h.courses.ListByCreator(c.Request.Context(), adminID)
	if err != nil {
		RespondInternal(c, "Something went wrong while fetching courses")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"courses": courses,
	})
}

// ListAll handles GET /admin/courses/all. Unrestricted by design: this is the
// administrative oversight view.
func (h *CourseHandler) ListAll(c *gin.Context) {
	courses, err := h.courses.ListAll(c.Request.Context())
	if err != nil {
		RespondInternal(c, "Something went wrong while fetching all courses")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"courses": courses,
	})
}

// Preview handles GET /course/preview, the unauthenticated listing. Served
// from the preview cache when warm.
func (h *CourseHandler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	if body, ok := h.cache.Get(ctx, previewCacheKey); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	courses, err := h.courses.ListAll(ctx)
	if err != nil {
		RespondInternal(c, "Something went wrong while fetching courses")
		return
	}

	payload := gin.H{"courses": courses}
	if body, err := json.Marshal(payload); err == nil {
		h.cache.Set(ctx, previewCacheKey, body)
	}

	c.JSON(http.StatusOK, payload)
}

// Debug handles GET /course/debug: same listing as Preview, but it bypasses
// the cache and logs what the database actually holds.
func (h *CourseHandler) Debug(c *gin.Context) {
	courses, err := h.courses.ListAll(c.Request.Context())
	if err != nil {
		RespondInternal(c, "Something went wrong")
		return
	}

	h.log.Debug("course debug listing", "count", len(courses))

	c.JSON(http.StatusOK, gin.H{
		"count":   len(courses),
		"courses": courses,
	})
}

func (h *CourseHandler) invalidatePreview(c *gin.Context) {
	h.cache.Delete(c.Request.Context(), previewCacheKey)
}
