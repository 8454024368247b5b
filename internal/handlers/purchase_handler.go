package handlers

import (
	"errors"
	"net/http"

	"github.com/coursify/coursify-backend/internal/middleware"
	"github.com/coursify/coursify-backend/internal/models"
	"github.com/coursify/coursify-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PurchaseHandler handles the user-scoped purchase operations
type PurchaseHandler struct {
	purchases services.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler
func NewPurchaseHandler(purchases services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases}
}

// Purchase handles POST /course/purchase
func (h *PurchaseHandler) Purchase(c *gin.Context) {
	userID, ok := middleware.SubjectIDFromContext(c)
	if !ok {
		RespondUnauthorized(c, "Invalid token")
		return
	}

	var req models.PurchaseRequest
	if !BindJSON(c, &req) {
		return
	}

	courseID, err := primitive.ObjectIDFromHex(req.CourseID)
	if err != nil {
		RespondNotFound(c, "Course not found")
		return
	}

	if _, err := h.purchases.Purchase(c.Request.Context(), userID, courseID); err != nil {
		switch {
		case errors.Is(err, services.ErrCourseNotFound):
			RespondNotFound(c, "Course not found")
		case errors.Is(err, services.ErrAlreadyPurchased):
			RespondBadRequest(c, "already_purchased", "Course already purchased", nil)
		default:
			RespondInternal(c, "Something went wrong during purchase")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "You have successfully purchased the course",
	})
}

// ListPurchases handles GET /user/purchases. Purchases and their course
// documents come back as parallel arrays correlated by courseId.
func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	userID, ok := middleware.SubjectIDFromContext(c)
	if !ok {
		RespondUnauthorized(c, "Invalid token")
		return
	}

	purchases, courses, err := h.purchases.ListForUser(c.Request.Context(), userID)
	if err != nil {
		RespondInternal(c, "Something went wrong while fetching purchases")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"purchases":   purchases,
		"coursesData": courses,
	})
}
