package storage

import (
	"log"
	"time"

	"campus-events/internal/auth"
	. "campus-events/pkg/campus"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Connect(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&User{},
		&Event{},
		&Participation{},
		&Club{},
		&Community{},
		&TravelPlan{},
		&College{},
		&Message{},
		&Notification{},
	)

	if err != nil {
		return nil, err
	}

	return db, nil
}

// Seed inserts the admin account and sample campus data, skipping rows
// that already exist.
func Seed(db *gorm.DB) {
	seedAdmin(db)
	seedClubs(db)
	seedCommunities(db)
	seedEvents(db)
}

func seedAdmin(db *gorm.DB) {
	var existing User
	if err := db.First(&existing, "email = ?", "admin@college.edu").Error; err == nil {
		return
	}

	hash, err := auth.HashString("admin123")
	if err != nil {
		log.Printf("failed to hash admin password: %v", err)
		return
	}

	admin := User{
		Email:          "admin@college.edu",
		HashedPassword: hash,
		FullName:       "Campus Admin",
		IsSuperuser:    true,
		IsActive:       true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("failed to insert admin user: %v", err)
	}
}

func seedClubs(db *gorm.DB) {
	clubs := []Club{
		{Name: "Technical Club", Description: "Coding, AI, and Robotics enthusiasts", Category: "Technical"},
		{Name: "Cultural Committee", Description: "Dancing, Music, and Art events", Category: "Cultural"},
		{Name: "Sports Hub", Description: "Cricket, Football, and more", Category: "Sports"},
	}

	for _, club := range clubs {
		var existing Club
		if err := db.First(&existing, "name = ?", club.Name).Error; err == nil {
			continue
		}
		if err := db.Create(&club).Error; err != nil {
			log.Printf("failed to insert club %s: %v", club.Name, err)
		}
	}
}

func seedCommunities(db *gorm.DB) {
	communities := []Community{
		{Name: "Freshers Batch 2026", Description: "Official group for all new students", MemberCount: 450},
		{Name: "Placement Prep", Description: "Interview experiences and referrals", MemberCount: 1200},
		{Name: "Hostel Life", Description: "Mess menus, complaints and late night plans", MemberCount: 800},
	}

	for _, community := range communities {
		var existing Community
		if err := db.First(&existing, "name = ?", community.Name).Error; err == nil {
			continue
		}
		if err := db.Create(&community).Error; err != nil {
			log.Printf("failed to insert community %s: %v", community.Name, err)
		}
	}
}

func seedEvents(db *gorm.DB) {
	var admin User
	if err := db.First(&admin, "email = ?", "admin@college.edu").Error; err != nil {
		return
	}

	start := time.Now().Add(7 * 24 * time.Hour)
	end := start.Add(8 * time.Hour)
	events := []Event{
		{
			Title:       "TechFest 2026",
			Description: "Annual technical festival with hackathons and workshops",
			Location:    "Main Auditorium",
			StartTime:   &start,
			EndTime:     &end,
			OrganizerID: admin.ID,
		},
	}

	for _, event := range events {
		var existing Event
		if err := db.First(&existing, "title = ?", event.Title).Error; err == nil {
			continue
		}
		if err := db.Create(&event).Error; err != nil {
			log.Printf("failed to insert event %s: %v", event.Title, err)
		}
	}
}
