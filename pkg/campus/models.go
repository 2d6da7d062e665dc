package campus

import (
	"time"
)

type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	FullName       string `gorm:"index" json:"full_name"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword string `gorm:"not null" json:"-"`
	IsActive       bool   `gorm:"default:true" json:"is_active"`
	IsSuperuser    bool   `gorm:"default:false" json:"is_superuser"`

	OrganizedEvents []Event         `gorm:"foreignKey:OrganizerID" json:"-"`
	Participations  []Participation `json:"-"`
	TravelPlans     []TravelPlan    `gorm:"foreignKey:OrganizerID" json:"-"`
	MessagesSent    []Message       `gorm:"foreignKey:SenderID" json:"-"`
}

type Event struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"index;not null" json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	ImageURL    *string    `json:"image_url"`
	OrganizerID uint       `json:"organizer_id"`
	CreatedAt   time.Time  `json:"created_at"`

	Participants []Participation `json:"-"`
}

type Participation struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `json:"user_id"`
	EventID      uint      `json:"event_id"`
	RegisteredAt time.Time `gorm:"autoCreateTime" json:"registered_at"`
	// registered, attended, cancelled
	Status string `gorm:"default:registered" json:"status"`
}

type Club struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"index;not null" json:"name"`
	Description string `json:"description"`
	// Technical, Cultural, Sports, etc.
	Category  string    `json:"category"`
	LogoURL   *string   `json:"logo_url"`
	CreatedAt time.Time `json:"created_at"`
}

type Community struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"index;not null" json:"name"`
	Description string  `json:"description"`
	MemberCount int     `gorm:"default:0" json:"member_count"`
	ImageURL    *string `json:"image_url"`
}

type TravelPlan struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Destination string    `gorm:"not null" json:"destination"`
	DateTime    time.Time `gorm:"not null" json:"date_time"`
	// Car, Bus, Auto, etc.
	Mode           string `json:"mode"`
	SeatsAvailable int    `gorm:"default:1" json:"seats_available"`
	OrganizerID    uint   `json:"organizer_id"`
}

type College struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"uniqueIndex;not null" json:"name"`
	Slug       string `gorm:"uniqueIndex;not null" json:"slug"`
	InviteCode string `gorm:"uniqueIndex" json:"invite_code"`
	IsActive   bool   `gorm:"default:true" json:"is_active"`
}

// Message is a persisted chat message. Channel is a routing tag, not a
// foreign key; "general" is the default room.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SenderID  uint      `json:"sender_id"`
	Content   string    `gorm:"not null" json:"content"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
	Channel   string    `gorm:"index" json:"channel"`
}

// Notification targets a single user when UserID is set, every user when
// it is nil.
type Notification struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"not null" json:"title"`
	Message string `gorm:"not null" json:"message"`
	// info, success, warning, error
	Type      string    `gorm:"default:info" json:"type"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
