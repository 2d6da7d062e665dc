package api

import (
	"errors"
	"strconv"

	e "campus-events/internal/event"
	"campus-events/internal/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EventHandlers struct {
	service *e.EventService
}

func NewEventHandlers(db *gorm.DB, hub *ws.Hub) *EventHandlers {
	return &EventHandlers{
		service: e.NewEventService(db, hub),
	}
}

// ListEventsHandler retrieves events
// @Summary List events
// @Description Retrieve events with pagination
// @Tags Events
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Max rows to return"
// @Success 200 {array} campus.Event
// @Router /api/v1/events [get]
func (h *EventHandlers) ListEventsHandler(c *gin.Context) {
	skip, limit := paginationParams(c)

	events, err := h.service.ListEvents(skip, limit)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to retrieve events"})
		return
	}

	c.JSON(200, events)
}

// CreateEventHandler creates a new event
// @Summary Create event
// @Description Create a new event; a "New Event" notification is broadcast to connected users
// @Tags Events
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body event.CreateEventInput true "Event"
// @Success 200 {object} campus.Event
// @Failure 400 {object} ErrorResponse "Bad request"
// @Router /api/v1/events [post]
func (h *EventHandlers) CreateEventHandler(c *gin.Context) {
	var input e.CreateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	event, err := h.service.CreateEvent(c.GetUint("user_id"), input)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create event"})
		return
	}

	c.JSON(200, event)
}

// GetEventHandler retrieves a single event
// @Summary Get event by ID
// @Tags Events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} campus.Event
// @Failure 404 {object} ErrorResponse "Event not found"
// @Router /api/v1/events/{id} [get]
func (h *EventHandlers) GetEventHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid event ID"})
		return
	}

	event, err := h.service.GetEvent(uint(id))
	if err != nil {
		if errors.Is(err, e.ErrEventNotFound) {
			c.JSON(404, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to retrieve event"})
		return
	}

	c.JSON(200, event)
}

// RegisterParticipationHandler registers the caller for an event
// @Summary Register for an event
// @Tags Events
// @Produce json
// @Security Bearer
// @Param id path int true "Event ID"
// @Success 200 {object} campus.Participation
// @Failure 400 {object} ErrorResponse "Already registered for this event"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Router /api/v1/events/{id}/register [post]
func (h *EventHandlers) RegisterParticipationHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid event ID"})
		return
	}

	participation, err := h.service.RegisterParticipation(c.GetUint("user_id"), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, e.ErrAlreadyRegistered):
			c.JSON(400, gin.H{"error": err.Error()})
		case errors.Is(err, e.ErrEventNotFound):
			c.JSON(404, gin.H{"error": err.Error()})
		default:
			c.JSON(500, gin.H{"error": "Failed to register for event"})
		}
		return
	}

	c.JSON(200, participation)
}

// ListMyParticipationsHandler lists events the caller registered for
// @Summary List my event registrations
// @Tags Events
// @Produce json
// @Security Bearer
// @Success 200 {array} campus.Event
// @Router /api/v1/events/me [get]
func (h *EventHandlers) ListMyParticipationsHandler(c *gin.Context) {
	events, err := h.service.GetUserParticipations(c.GetUint("user_id"))
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to retrieve registrations"})
		return
	}

	c.JSON(200, events)
}
