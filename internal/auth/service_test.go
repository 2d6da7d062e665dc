package auth

import (
	"errors"
	"testing"

	. "campus-events/pkg/campus"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(&User{})
	if err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func TestAuthService_Register(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(db)

	tests := []struct {
		name        string
		email       string
		fullName    string
		password    string
		expectError bool
		errorMsg    string
	}{
		{
			name:        "valid registration",
			email:       "student@college.edu",
			fullName:    "Test Student",
			password:    "testpassword",
			expectError: false,
		},
		{
			name:        "empty email",
			email:       "",
			password:    "testpassword",
			expectError: true,
			errorMsg:    "email cannot be empty",
		},
		{
			name:        "empty password",
			email:       "other@college.edu",
			password:    "",
			expectError: true,
			errorMsg:    "password cannot be empty",
		},
		{
			name:        "duplicate email",
			email:       "student@college.edu",
			password:    "testpassword",
			expectError: true,
			errorMsg:    ErrEmailTaken.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := service.Register(tt.email, tt.fullName, tt.password, false)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error but got none")
				}
				if tt.errorMsg != "" && err.Error() != tt.errorMsg {
					t.Errorf("Expected error message '%s', got '%s'", tt.errorMsg, err.Error())
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}

			if user.ID == 0 {
				t.Error("Expected assigned user id")
			}
			if user.Email != tt.email {
				t.Errorf("Expected email %s, got %s", tt.email, user.Email)
			}
			if user.HashedPassword == tt.password {
				t.Error("Password stored in plaintext")
			}
			if !user.IsActive {
				t.Error("Expected new user to be active")
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(db)

	if _, err := service.Register("student@college.edu", "Test Student", "testpassword", false); err != nil {
		t.Fatalf("Failed to register user: %v", err)
	}

	t.Run("valid login", func(t *testing.T) {
		user, err := service.Login("student@college.edu", "testpassword")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if user.Email != "student@college.edu" {
			t.Errorf("Got wrong user: %s", user.Email)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login("student@college.edu", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := service.Login("nobody@college.edu", "testpassword")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("inactive user", func(t *testing.T) {
		db.Model(&User{}).Where("email = ?", "student@college.edu").Update("is_active", false)
		defer db.Model(&User{}).Where("email = ?", "student@college.edu").Update("is_active", true)

		_, err := service.Login("student@college.edu", "testpassword")
		if !errors.Is(err, ErrInactiveUser) {
			t.Errorf("Expected ErrInactiveUser, got %v", err)
		}
	})
}
