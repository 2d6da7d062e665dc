package ws

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"campus-events/pkg/campus"
)

// DefaultChannel is the room a message lands in when the client names none.
const DefaultChannel = "general"

var ErrEmptyMessage = errors.New("message content cannot be empty")

// MessageStore durably appends a chat message and returns the stored row
// with its assigned id and timestamp.
type MessageStore interface {
	SaveMessage(senderID uint, channel, content string) (*campus.Message, error)
}

// NotificationStore durably appends a notification. A nil userID means
// the notification addresses every user.
type NotificationStore interface {
	SaveNotification(title, message, kind string, userID *uint) (*campus.Notification, error)
}

// Hub persists inbound events and fans the resulting frames out to live
// connections. Persistence is the durability guarantee; live delivery is
// best effort.
type Hub struct {
	registry      *Registry
	messages      MessageStore
	notifications NotificationStore
}

func NewHub(registry *Registry, messages MessageStore, notifications NotificationStore) *Hub {
	return &Hub{
		registry:      registry,
		messages:      messages,
		notifications: notifications,
	}
}

func (h *Hub) Registry() *Registry {
	return h.registry
}

// SendChat persists the message and then pushes it to every live
// connection. The channel rides along as metadata; there is no
// per-channel subscription filtering. A persistence failure aborts the
// send before any delivery is attempted.
func (h *Hub) SendChat(senderID uint, channel, content string) (*campus.Message, error) {
	if content == "" {
		return nil, ErrEmptyMessage
	}
	if channel == "" {
		channel = DefaultChannel
	}

	msg, err := h.messages.SaveMessage(senderID, channel, content)
	if err != nil {
		return nil, fmt.Errorf("persist chat message: %w", err)
	}

	payload, err := json.Marshal(campus.NewChatBroadcastFrame(msg))
	if err != nil {
		// The write already succeeded; the sender still gets its message back.
		log.Printf("ws: marshal chat frame %d: %v", msg.ID, err)
		return msg, nil
	}

	h.fanOut(h.registry.AllConnections(), payload)

	return msg, nil
}

// SendNotification persists the notification and delivers it to the
// target user's connections, or to everyone when no target is set. A
// target with zero live connections is not an error; the stored row is
// picked up later through the history endpoint.
func (h *Hub) SendNotification(title, message, kind string, target *uint) (*campus.Notification, error) {
	notif, err := h.notifications.SaveNotification(title, message, kind, target)
	if err != nil {
		return nil, fmt.Errorf("persist notification: %w", err)
	}

	payload, err := json.Marshal(campus.NewNotificationFrame(notif))
	if err != nil {
		log.Printf("ws: marshal notification frame %d: %v", notif.ID, err)
		return notif, nil
	}

	if target != nil {
		h.fanOut(h.registry.ConnectionsFor(*target), payload)
	} else {
		h.fanOut(h.registry.AllConnections(), payload)
	}

	return notif, nil
}

// BroadcastSystemEvent pushes an ephemeral payload to every live
// connection without persisting anything.
func (h *Hub) BroadcastSystemEvent(v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal system event: %w", err)
	}

	h.fanOut(h.registry.AllConnections(), payload)
	return nil
}

// fanOut attempts delivery to each connection independently. A dead or
// backed-up socket is logged and skipped; its own read loop handles the
// eventual cleanup.
func (h *Hub) fanOut(clients []*Client, payload []byte) {
	for _, client := range clients {
		if err := client.Send(payload); err != nil {
			log.Printf("ws: dropping frame for user %d: %v", client.UserID(), err)
		}
	}
}
