package campus

import "time"

// InboundChatFrame is what a connected client sends over the socket.
// Channel defaults to "general" when omitted.
type InboundChatFrame struct {
	Content string `json:"content"`
	Channel string `json:"channel"`
}

// ChatBroadcastFrame is pushed to every live connection after a message
// has been persisted.
type ChatBroadcastFrame struct {
	ID       uint   `json:"id"`
	SenderID uint   `json:"sender_id"`
	Content  string `json:"content"`
	Channel  string `json:"channel"`
	// ISO-8601 / RFC 3339
	Timestamp string `json:"timestamp"`
}

// NotificationFrame carries a stored notification to live connections.
type NotificationFrame struct {
	Type      string `json:"type"`
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	NotifType string `json:"notif_type"`
}

// NewChatBroadcastFrame builds the outbound frame for a persisted message.
func NewChatBroadcastFrame(m *Message) ChatBroadcastFrame {
	return ChatBroadcastFrame{
		ID:        m.ID,
		SenderID:  m.SenderID,
		Content:   m.Content,
		Channel:   m.Channel,
		Timestamp: m.Timestamp.Format(time.RFC3339),
	}
}

// NewNotificationFrame builds the outbound frame for a stored notification.
func NewNotificationFrame(n *Notification) NotificationFrame {
	return NotificationFrame{
		Type:      "notification",
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		NotifType: n.Type,
	}
}
