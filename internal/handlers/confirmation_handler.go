package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fzambone/event-attendance/internal/helpers"
	"github.com/fzambone/event-attendance/internal/models"
	"github.com/fzambone/event-attendance/internal/validation"
)

// ConfirmationStore is the slice of the confirmation repository the
// handlers need. All mutations are scoped by event id and confirmation id
// together.
type ConfirmationStore interface {
	Create(eventID, name string, guests int) (*models.Confirmation, error)
	Update(eventID, confirmationID, name string, guests int) (*models.Confirmation, error)
	Delete(eventID, confirmationID string) error
}

type ConfirmationHandler struct {
	events        EventStore
	confirmations ConfirmationStore
}

func NewConfirmationHandler(events EventStore, confirmations ConfirmationStore) *ConfirmationHandler {
	return &ConfirmationHandler{events: events, confirmations: confirmations}
}

// ConfirmRequest is the public RSVP body. Guests stays untyped so both a
// bare number and the string a form submit produces are accepted.
type ConfirmRequest struct {
	Name    string `json:"name"`
	Guests  any    `json:"guests"`
	EventID string `json:"eventId"`
}

type UpdateConfirmationRequest struct {
	Name   string `json:"name"`
	Guests any    `json:"guests"`
}

// GetConfirmations serves both views: without an eventId it lists all
// events, with one it returns that event's details plus its
// confirmations, newest first.
func (h *ConfirmationHandler) GetConfirmations(c *gin.Context) {
	eventID := c.Query("eventId")
	if eventID == "" {
		events, err := h.events.List()
		if err != nil {
			helpers.RespondWithAppError(c, err)
			return
		}
		if events == nil {
			events = []models.Event{}
		}
		c.JSON(http.StatusOK, events)
		return
	}

	event, err := h.events.GetWithConfirmations(eventID)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}
	confirmations := event.Confirmations
	if confirmations == nil {
		confirmations = []models.Confirmation{}
	}
	c.JSON(http.StatusOK, gin.H{
		"details":       event.Details(),
		"confirmations": confirmations,
	})
}

func (h *ConfirmationHandler) CreateConfirmation(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid JSON in request body.")
		return
	}

	eventID, err := validation.Required(req.EventID, "Event id")
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}
	name, err := validation.Required(req.Name, "Name")
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}
	guests, err := validation.Guests(req.Guests)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	confirmation, err := h.confirmations.Create(eventID, name, guests)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Confirmation successful!",
		"data":    confirmation,
	})
}

func (h *ConfirmationHandler) UpdateConfirmation(c *gin.Context) {
	eventID, confirmationID, ok := confirmationScope(c)
	if !ok {
		return
	}

	var req UpdateConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid JSON in request body.")
		return
	}
	name, err := validation.Required(req.Name, "Name")
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}
	guests, err := validation.Guests(req.Guests)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	confirmation, err := h.confirmations.Update(eventID, confirmationID, name, guests)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Confirmation updated successfully.",
		"data":    confirmation,
	})
}

func (h *ConfirmationHandler) DeleteConfirmation(c *gin.Context) {
	eventID, confirmationID, ok := confirmationScope(c)
	if !ok {
		return
	}

	if err := h.confirmations.Delete(eventID, confirmationID); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Confirmation deleted successfully.",
	})
}

// confirmationScope pulls and validates the eventId and id query params
// shared by update and delete. On failure it writes the error response
// and reports !ok.
func confirmationScope(c *gin.Context) (eventID, confirmationID string, ok bool) {
	eventID, err := validation.Required(c.Query("eventId"), "Event id")
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return "", "", false
	}
	confirmationID, err = validation.Required(c.Query("id"), "Confirmation id")
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return "", "", false
	}
	confirmationID, err = validation.ConfirmationID(confirmationID)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return "", "", false
	}
	return eventID, confirmationID, true
}
