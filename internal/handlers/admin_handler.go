package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fzambone/event-attendance/internal/helpers"
	"github.com/fzambone/event-attendance/internal/models"
)

// AdminHandler serves the two admin page endpoints the session gate
// routes between. They return the data each view is built from; page
// rendering itself lives with the frontend.
type AdminHandler struct {
	events EventStore
}

func NewAdminHandler(events EventStore) *AdminHandler {
	return &AdminHandler{events: events}
}

// LoginPage echoes the error flag a failed login redirect carries.
func (h *AdminHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":  "login",
		"error": c.Query("error"),
	})
}

// AttendancePage is the protected landing view: the event list the admin
// picks from.
func (h *AdminHandler) AttendancePage(c *gin.Context) {
	events, err := h.events.List()
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}
	if events == nil {
		events = []models.Event{}
	}
	c.JSON(http.StatusOK, gin.H{
		"page":   "attendance",
		"events": events,
	})
}
