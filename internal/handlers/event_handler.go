package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fzambone/event-attendance/internal/helpers"
	"github.com/fzambone/event-attendance/internal/models"
	"github.com/fzambone/event-attendance/internal/validation"
)

// EventStore is the slice of the event repository the handlers need.
type EventStore interface {
	List() ([]models.Event, error)
	Create(event *models.Event) error
	GetWithConfirmations(eventID string) (*models.Event, error)
	Delete(eventID string) error
}

type EventHandler struct {
	events EventStore
}

func NewEventHandler(events EventStore) *EventHandler {
	return &EventHandler{events: events}
}

type CreateEventRequest struct {
	EventID string `json:"eventId"`
	Name    string `json:"name"`
	Date    string `json:"date"`
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid JSON in request body.")
		return
	}

	eventID, err := validation.EventID(req.EventID)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}
	name, err := validation.Required(req.Name, "Event name")
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}
	date, err := validation.Required(req.Date, "Event date")
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	event := models.Event{ID: eventID, Name: name, Date: date}
	if err := h.events.Create(&event); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event created successfully!",
		"eventId": event.ID,
		"event":   event.Details(),
	})
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	eventID, err := validation.Required(c.Query("eventId"), "Event id")
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	if err := h.events.Delete(eventID); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event and its confirmations deleted successfully!",
	})
}
