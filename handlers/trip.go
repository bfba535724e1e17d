package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	tripRepo "travelogue/database/repository/trip"
	"travelogue/models"
	"travelogue/services/trip"
	"travelogue/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TripHandler exposes the trip catalog over HTTP.
type TripHandler struct {
	service trip.TripService
}

// NewTripHandler creates a TripHandler.
func NewTripHandler(service trip.TripService) *TripHandler {
	return &TripHandler{service: service}
}

// ListTrips handles GET /api/trips with filtering.
func (h *TripHandler) ListTrips(c *gin.Context) {
	criteria := tripRepo.TripSearchCriteria{
		Search:   c.Query("search"),
		Duration: c.Query("duration"),
		Sort:     c.DefaultQuery("sort", "-created_at"),
	}

	if tags := c.Query("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			criteria.Tags = append(criteria.Tags, strings.TrimSpace(tag))
		}
	}
	if minPrice := c.Query("minPrice"); minPrice != "" {
		criteria.MinPrice, _ = strconv.ParseFloat(minPrice, 64)
	}
	if maxPrice := c.Query("maxPrice"); maxPrice != "" {
		criteria.MaxPrice, _ = strconv.ParseFloat(maxPrice, 64)
	}
	if limit := c.Query("limit"); limit != "" {
		criteria.Limit, _ = strconv.ParseInt(limit, 10, 64)
	}

	trips, err := h.service.ListTrips(criteria)
	if err != nil {
		h.respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(trips), "data": trips})
}

// FeaturedTrips handles GET /api/trips/featured.
func (h *TripHandler) FeaturedTrips(c *gin.Context) {
	trips, err := h.service.FeaturedTrips()
	if err != nil {
		h.respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": trips})
}

// PopularTrips handles GET /api/trips/popular.
func (h *TripHandler) PopularTrips(c *gin.Context) {
	trips, err := h.service.PopularTrips()
	if err != nil {
		h.respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": trips})
}

// Tags handles GET /api/trips/tags.
func (h *TripHandler) Tags(c *gin.Context) {
	tags, err := h.service.Tags()
	if err != nil {
		h.respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": tags})
}

// GetTrip handles GET /api/trips/:id.
func (h *TripHandler) GetTrip(c *gin.Context) {
	found, err := h.service.GetTrip(c.Param("id"))
	if err != nil {
		h.respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": found})
}

// SimilarTrips handles GET /api/trips/:id/similar.
func (h *TripHandler) SimilarTrips(c *gin.Context) {
	trips, err := h.service.SimilarTrips(c.Param("id"))
	if err != nil {
		h.respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": trips})
}

// CreateTrip handles POST /api/trips (admin only).
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var tripData models.Trip
	if err := c.ShouldBindJSON(&tripData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.service.CreateTrip(tripData)
	if err != nil {
		h.respondTripError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Trip created successfully", "data": created})
}

// UpdateTrip handles PUT /api/trips/:id (admin only).
func (h *TripHandler) UpdateTrip(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.service.UpdateTrip(c.Param("id"), fields)
	if err != nil {
		h.respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Trip updated successfully", "data": updated})
}

// DeleteTrip handles DELETE /api/trips/:id (admin only).
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	tripID := c.Param("id")
	if err := h.service.DeleteTrip(tripID); err != nil {
		h.respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Trip deleted successfully",
		"data":    gin.H{"tripId": tripID},
	})
}

func (h *TripHandler) respondTripError(c *gin.Context, err error) {
	if errors.Is(err, trip.ErrTripNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Trip not found"})
		return
	}
	utils.GetLogger().Error("trip request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
}
