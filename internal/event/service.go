package event

import (
	"errors"
	"log"
	"time"

	. "campus-events/pkg/campus"

	"gorm.io/gorm"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrAlreadyRegistered = errors.New("already registered for this event")
)

// Notifier announces a new event to connected users. Delivery is best
// effort; event creation never fails on it.
type Notifier interface {
	SendNotification(title, message, kind string, target *uint) (*Notification, error)
}

type EventService struct {
	db       *gorm.DB
	notifier Notifier
}

func NewEventService(db *gorm.DB, notifier Notifier) *EventService {
	return &EventService{db: db, notifier: notifier}
}

type CreateEventInput struct {
	Title       string     `json:"title" binding:"required" example:"TechFest 2026"`
	Description string     `json:"description" example:"Annual technical festival"`
	Location    string     `json:"location" example:"Main Auditorium"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	ImageURL    *string    `json:"image_url"`
}

func (s *EventService) ListEvents(skip, limit int) ([]Event, error) {
	var events []Event
	if err := s.db.Offset(skip).Limit(limit).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *EventService) GetEvent(id uint) (*Event, error) {
	var event Event
	if err := s.db.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (s *EventService) CreateEvent(organizerID uint, input CreateEventInput) (*Event, error) {
	event := Event{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		ImageURL:    input.ImageURL,
		OrganizerID: organizerID,
	}

	if err := s.db.Create(&event).Error; err != nil {
		return nil, err
	}

	if s.notifier != nil {
		_, err := s.notifier.SendNotification("New Event: "+event.Title, event.Description, "info", nil)
		if err != nil {
			log.Printf("event %d created but notification failed: %v", event.ID, err)
		}
	}

	return &event, nil
}

// RegisterParticipation signs the user up for an event, once.
func (s *EventService) RegisterParticipation(userID, eventID uint) (*Participation, error) {
	if _, err := s.GetEvent(eventID); err != nil {
		return nil, err
	}

	var existing Participation
	err := s.db.Where("user_id = ? AND event_id = ?", userID, eventID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyRegistered
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	participation := Participation{
		UserID:  userID,
		EventID: eventID,
	}

	if err := s.db.Create(&participation).Error; err != nil {
		return nil, err
	}

	return &participation, nil
}

// GetUserParticipations lists the events the user registered for.
func (s *EventService) GetUserParticipations(userID uint) ([]Event, error) {
	var events []Event
	err := s.db.
		Joins("JOIN participations ON participations.event_id = events.id").
		Where("participations.user_id = ?", userID).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
