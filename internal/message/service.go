package message

import (
	. "campus-events/pkg/campus"

	"gorm.io/gorm"
)

type MessageService struct {
	db *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

// SaveMessage appends a chat message and returns the row with its
// assigned id and timestamp.
func (s *MessageService) SaveMessage(senderID uint, channel, content string) (*Message, error) {
	msg := Message{
		SenderID: senderID,
		Channel:  channel,
		Content:  content,
	}

	if err := s.db.Create(&msg).Error; err != nil {
		return nil, err
	}

	return &msg, nil
}

// GetChannelMessages returns a channel's history, newest first.
func (s *MessageService) GetChannelMessages(channel string, skip, limit int) ([]Message, error) {
	var messages []Message
	err := s.db.
		Where("channel = ?", channel).
		Order("timestamp DESC").
		Offset(skip).
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	return messages, nil
}
