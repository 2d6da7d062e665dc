package notification

import (
	"testing"

	. "campus-events/pkg/campus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&User{}, &Notification{}))

	return db
}

func TestNotificationService_SaveNotification(t *testing.T) {
	db := setupTestDB(t)
	service := NewNotificationService(db)

	target := uint(7)
	notif, err := service.SaveNotification("Hello", "personal", "success", &target)
	require.NoError(t, err)
	assert.NotZero(t, notif.ID)
	assert.False(t, notif.CreatedAt.IsZero())
	require.NotNil(t, notif.UserID)
	assert.Equal(t, uint(7), *notif.UserID)
	assert.False(t, notif.IsRead)

	// Empty kind falls back to info.
	global, err := service.SaveNotification("Hello", "everyone", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "info", global.Type)
	assert.Nil(t, global.UserID)
}

func TestNotificationService_GetUserNotifications(t *testing.T) {
	db := setupTestDB(t)
	service := NewNotificationService(db)

	alice, bob := uint(1), uint(2)
	_, err := service.SaveNotification("A", "for alice", "info", &alice)
	require.NoError(t, err)
	_, err = service.SaveNotification("B", "for bob", "info", &bob)
	require.NoError(t, err)
	_, err = service.SaveNotification("G", "for everyone", "info", nil)
	require.NoError(t, err)

	got, err := service.GetUserNotifications(alice, 0, 100)
	require.NoError(t, err)
	require.Len(t, got, 2, "own plus global notifications")

	titles := []string{got[0].Title, got[1].Title}
	assert.ElementsMatch(t, []string{"A", "G"}, titles)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	db := setupTestDB(t)
	service := NewNotificationService(db)

	alice, bob := uint(1), uint(2)
	_, err := service.SaveNotification("A", "for alice", "info", &alice)
	require.NoError(t, err)
	_, err = service.SaveNotification("B", "for bob", "info", &bob)
	require.NoError(t, err)

	require.NoError(t, service.MarkAllRead(alice))

	var aliceNotif, bobNotif Notification
	require.NoError(t, db.First(&aliceNotif, "user_id = ?", alice).Error)
	require.NoError(t, db.First(&bobNotif, "user_id = ?", bob).Error)

	assert.True(t, aliceNotif.IsRead)
	assert.False(t, bobNotif.IsRead, "other users' notifications stay unread")
}
