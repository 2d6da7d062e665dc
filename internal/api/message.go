package api

import (
	m "campus-events/internal/message"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MessageHandlers struct {
	service *m.MessageService
}

func NewMessageHandlers(db *gorm.DB) *MessageHandlers {
	return &MessageHandlers{
		service: m.NewMessageService(db),
	}
}

// GetChannelMessagesHandler retrieves message history for a channel
// @Summary Get channel message history
// @Description Offline clients catch up on missed traffic here; live delivery is best effort
// @Tags Chat
// @Produce json
// @Security Bearer
// @Param channel path string true "Channel name"
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Max rows to return"
// @Success 200 {array} campus.Message
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /api/v1/chat/{channel} [get]
func (h *MessageHandlers) GetChannelMessagesHandler(c *gin.Context) {
	channel := c.Param("channel")
	skip, limit := paginationParams(c)

	messages, err := h.service.GetChannelMessages(channel, skip, limit)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to retrieve messages"})
		return
	}

	c.JSON(200, messages)
}
