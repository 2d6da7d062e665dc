package api

import (
	"log"
	"net/http"
	"time"

	a "campus-events/internal/auth"
	"campus-events/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// CloseAuthenticationFailed is sent when the credential on the
// connection URI is rejected. Clients treat it as "re-login", not
// "retry".
const CloseAuthenticationFailed = 4003

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The mobile app and admin portal connect from their own origins.
		return true
	},
}

type WebSocketHandler struct {
	hub    *ws.Hub
	secret string
}

func NewWebSocketHandler(hub *ws.Hub, secret string) *WebSocketHandler {
	return &WebSocketHandler{
		hub:    hub,
		secret: secret,
	}
}

// HandleWebSocket runs the connection lifecycle: upgrade, authenticate,
// register, pump until disconnect.
// @Summary WebSocket connection endpoint
// @Description Upgrade to WebSocket for real-time chat and notifications; the JWT rides on the URI because browsers cannot set headers on the handshake
// @Tags websocket
// @Param token path string true "JWT access token"
// @Success 101 {string} string "Switching Protocols"
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Router /api/v1/ws/{token} [get]
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws: upgrade failed: %v", err)
		return
	}

	userID, _, err := a.ValidateToken(h.secret, c.Param("token"))
	if err != nil {
		// Rejected before registration; the client never enters the registry.
		conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(CloseAuthenticationFailed, "authentication failed"),
			time.Now().Add(time.Second),
		)
		conn.Close()
		return
	}

	client := ws.NewClient(h.hub, conn, userID)
	h.hub.Registry().Register(userID, client)
	log.Printf("ws: user %d connected (%d live connections)", userID, h.hub.Registry().ConnectionCount())

	go client.WritePump()
	go client.ReadPump()
}

// GetConnectionInfo reports live connection counts (superuser only)
// @Summary Get WebSocket connection info
// @Tags websocket
// @Produce json
// @Security Bearer
// @Success 200 {object} map[string]any
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /api/v1/ws/info [get]
func (h *WebSocketHandler) GetConnectionInfo(c *gin.Context) {
	c.JSON(200, gin.H{
		"total_connections": h.hub.Registry().ConnectionCount(),
		"server_time":       time.Now().Format(time.RFC3339),
	})
}
