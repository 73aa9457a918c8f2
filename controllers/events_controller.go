package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	models "github.com/DanielJacob1998/capstone/models"
	store "github.com/DanielJacob1998/capstone/store"
)

// ---------------- CREATE ----------------
func CreateEvent(events *store.EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CreateEventInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Fall back to the authenticated identity.
		if input.CreatedBy == "" {
			input.CreatedBy = c.GetString("user_id")
		}

		event, err := events.CheckAndInsert(input)
		if err != nil {
			respondStoreError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Event created successfully",
			"event":   event,
		})
	}
}

// ---------------- LIST ----------------
func ListEvents(events *store.EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := store.QueryParams{
			StartDate: c.Query("start_date"),
			EndDate:   c.Query("end_date"),
			Page:      intQuery(c, "page", store.DefaultPage),
			Size:      intQuery(c, "size", store.DefaultSize),
		}

		page, total, err := events.Query(params)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"events": page,
			"total":  total,
			"page":   params.Page,
			"size":   params.Size,
		})
	}
}

// ---------------- GET ----------------
func GetEvent(events *store.EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := events.FindByID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusOK, event)
	}
}

// ---------------- UPDATE ----------------
func UpdateEvent(events *store.EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.UpdateEventInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		event, err := events.Update(c.Param("id"), input)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Event updated successfully",
			"event":   event,
		})
	}
}

// ---------------- DELETE ----------------
func DeleteEvent(events *store.EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := events.Delete(id); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Event deleted successfully",
			"id":      id,
		})
	}
}

// respondStoreError maps the store error taxonomy onto status codes.
// Conflicts carry the conflicting event in the payload.
func respondStoreError(c *gin.Context, err error) {
	var vErr *store.ValidationError
	var dupErr *store.DuplicateError
	var ovErr *store.OverlapError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
	case errors.As(err, &dupErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":    "duplicate event",
			"conflict": dupErr.Event,
		})
	case errors.As(err, &ovErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":    "event overlaps an existing event",
			"conflict": ovErr.Event,
		})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func intQuery(c *gin.Context, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
