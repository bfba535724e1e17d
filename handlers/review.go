package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"travelogue/models"
	"travelogue/services/review"
	"travelogue/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler exposes trip reviews over HTTP.
type ReviewHandler struct {
	service review.ReviewService
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(service review.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type createReviewRequest struct {
	TripID      string              `json:"tripId" binding:"required"`
	Name        string              `json:"name" binding:"required"`
	Email       string              `json:"email"`
	Rating      int                 `json:"rating" binding:"required"`
	Title       string              `json:"title"`
	Content     string              `json:"content" binding:"required"`
	TravelDate  string              `json:"travelDate"`
	TripAspects *models.TripAspects `json:"tripAspects"`
}

// CreateReview handles POST /api/reviews.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}

	var travelDate *time.Time
	if req.TravelDate != "" {
		if parsed, err := parseDate(req.TravelDate); err == nil {
			travelDate = &parsed
		}
	}

	created, err := h.service.CreateReview(review.CreateReviewRequest{
		TripID:      req.TripID,
		Name:        req.Name,
		Email:       req.Email,
		Rating:      req.Rating,
		Title:       req.Title,
		Content:     req.Content,
		TravelDate:  travelDate,
		TripAspects: req.TripAspects,
	})
	if err != nil {
		h.respondReviewError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    created,
		"message": "Review submitted successfully!",
	})
}

// ListTripReviews handles GET /api/reviews/:id, where id is a trip ID.
func (h *ReviewHandler) ListTripReviews(c *gin.Context) {
	sort := c.DefaultQuery("sort", "-created_at")
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	reviews, stats, err := h.service.ListTripReviews(c.Param("id"), sort, limit)
	if err != nil {
		h.respondReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(reviews),
		"stats":   stats,
		"data":    reviews,
	})
}

// RecentReviews handles GET /api/reviews.
func (h *ReviewHandler) RecentReviews(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "6"), 10, 64)

	reviews, err := h.service.RecentReviews(limit)
	if err != nil {
		h.respondReviewError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": reviews})
}

// MarkHelpful handles POST /api/reviews/:id/helpful.
func (h *ReviewHandler) MarkHelpful(c *gin.Context) {
	updated, err := h.service.MarkHelpful(c.Param("id"))
	if err != nil {
		h.respondReviewError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}

func (h *ReviewHandler) respondReviewError(c *gin.Context, err error) {
	var validationErr review.ValidationError

	switch {
	case errors.Is(err, review.ErrTripNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Trip not found"})
	case errors.Is(err, review.ErrReviewNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Review not found"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": validationErr.Message})
	default:
		utils.GetLogger().Error("review request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
	}
}
