package notification

import (
	. "campus-events/pkg/campus"

	"gorm.io/gorm"
)

type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// SaveNotification appends a notification. A nil userID addresses every
// user.
func (s *NotificationService) SaveNotification(title, message, kind string, userID *uint) (*Notification, error) {
	if kind == "" {
		kind = "info"
	}

	notif := Notification{
		Title:   title,
		Message: message,
		Type:    kind,
		UserID:  userID,
	}

	if err := s.db.Create(&notif).Error; err != nil {
		return nil, err
	}

	return &notif, nil
}

// GetUserNotifications returns the user's own notifications plus the
// global ones, newest first.
func (s *NotificationService) GetUserNotifications(userID uint, skip, limit int) ([]Notification, error) {
	var notifications []Notification
	err := s.db.
		Where("user_id = ? OR user_id IS NULL", userID).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}

	return notifications, nil
}

// MarkAllRead flags every notification addressed to the user as read.
func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.db.
		Model(&Notification{}).
		Where("user_id = ?", userID).
		Update("is_read", true).Error
}
