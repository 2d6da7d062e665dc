package api

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	a "campus-events/internal/auth"
	"campus-events/internal/config"
	"campus-events/internal/storage"
	"campus-events/pkg/campus"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		TokenTTL:  time.Minute,
		StaticDir: t.TempDir(),
	}
}

type wsTestServer struct {
	srv    *httptest.Server
	router *Router
	db     *gorm.DB
	cfg    *config.Config
}

func setupWSServer(t *testing.T) *wsTestServer {
	gin.SetMode(gin.TestMode)

	db, err := storage.Connect(":memory:")
	require.NoError(t, err)

	cfg := testConfig(t)

	engine := gin.New()
	router := NewRouter(db, cfg)
	router.RegisterRoutes(engine)

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	return &wsTestServer{srv: srv, router: router, db: db, cfg: cfg}
}

func (s *wsTestServer) createUser(t *testing.T, email string) (*campus.User, string) {
	t.Helper()

	user, err := a.NewAuthService(s.db).Register(email, "Test User", "password123", false)
	require.NoError(t, err)

	token, err := a.GenerateToken(s.cfg.JWTSecret, user, s.cfg.TokenTTL)
	require.NoError(t, err)

	return user, token
}

func (s *wsTestServer) dial(t *testing.T, token string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(s.srv.URL, "http") + "/api/v1/ws/" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) []byte {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	return data
}

func waitForConnections(t *testing.T, s *wsTestServer, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.router.Hub().Registry().ConnectionCount() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d live connections, got %d", want, s.router.Hub().Registry().ConnectionCount())
}

func TestWebSocket_InvalidTokenClosedWithPolicyCode(t *testing.T) {
	s := setupWSServer(t)

	conn := s.dial(t, "invalid-token")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)

	closeErr, ok := err.(*websocket.CloseError)
	require.True(t, ok, "expected a close error, got %v", err)
	assert.Equal(t, CloseAuthenticationFailed, closeErr.Code)

	assert.Zero(t, s.router.Hub().Registry().ConnectionCount(),
		"rejected connection must never appear in the registry")
}

func TestWebSocket_ChatBroadcastReachesAllUsers(t *testing.T) {
	s := setupWSServer(t)

	alice, aliceToken := s.createUser(t, "alice@college.edu")
	_, bobToken := s.createUser(t, "bob@college.edu")

	aliceConn := s.dial(t, aliceToken)
	bobConn := s.dial(t, bobToken)
	waitForConnections(t, s, 2)

	require.NoError(t, aliceConn.WriteJSON(map[string]string{"content": "hi", "channel": "general"}))

	for _, conn := range []*websocket.Conn{aliceConn, bobConn} {
		var frame campus.ChatBroadcastFrame
		require.NoError(t, json.Unmarshal(readFrame(t, conn), &frame))

		assert.Equal(t, "hi", frame.Content)
		assert.Equal(t, alice.ID, frame.SenderID)
		assert.Equal(t, "general", frame.Channel)
		assert.NotZero(t, frame.ID)
		assert.NotEmpty(t, frame.Timestamp)
	}

	var count int64
	s.db.Model(&campus.Message{}).Count(&count)
	assert.EqualValues(t, 1, count, "message persisted before broadcast")
}

func TestWebSocket_EmptyContentDropped(t *testing.T) {
	s := setupWSServer(t)

	_, aliceToken := s.createUser(t, "alice@college.edu")
	_, bobToken := s.createUser(t, "bob@college.edu")

	aliceConn := s.dial(t, aliceToken)
	bobConn := s.dial(t, bobToken)
	waitForConnections(t, s, 2)

	require.NoError(t, aliceConn.WriteJSON(map[string]string{"content": ""}))
	require.NoError(t, aliceConn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	require.NoError(t, aliceConn.WriteJSON(map[string]string{"content": "real message"}))

	// Only the well-formed frame comes through.
	var frame campus.ChatBroadcastFrame
	require.NoError(t, json.Unmarshal(readFrame(t, bobConn), &frame))
	assert.Equal(t, "real message", frame.Content)

	var count int64
	s.db.Model(&campus.Message{}).Count(&count)
	assert.EqualValues(t, 1, count, "dropped frames must not be persisted")

	// The malformed frames did not kill the session.
	assert.Equal(t, 2, s.router.Hub().Registry().ConnectionCount())
}

func TestWebSocket_DefaultChannel(t *testing.T) {
	s := setupWSServer(t)

	_, token := s.createUser(t, "alice@college.edu")
	conn := s.dial(t, token)
	waitForConnections(t, s, 1)

	require.NoError(t, conn.WriteJSON(map[string]string{"content": "no channel"}))

	var frame campus.ChatBroadcastFrame
	require.NoError(t, json.Unmarshal(readFrame(t, conn), &frame))
	assert.Equal(t, "general", frame.Channel)
}

func TestWebSocket_DisconnectDeregisters(t *testing.T) {
	s := setupWSServer(t)

	_, aliceToken := s.createUser(t, "alice@college.edu")
	_, bobToken := s.createUser(t, "bob@college.edu")

	s.dial(t, aliceToken)
	bobConn := s.dial(t, bobToken)
	waitForConnections(t, s, 2)

	bobConn.Close()
	waitForConnections(t, s, 1)
}

func TestWebSocket_NotificationDeliveredToTarget(t *testing.T) {
	s := setupWSServer(t)

	alice, aliceToken := s.createUser(t, "alice@college.edu")
	_, bobToken := s.createUser(t, "bob@college.edu")

	aliceConn := s.dial(t, aliceToken)
	bobConn := s.dial(t, bobToken)
	waitForConnections(t, s, 2)

	notif, err := s.router.Hub().SendNotification("Exam Alert", "Hall B tomorrow", "warning", &alice.ID)
	require.NoError(t, err)

	var frame campus.NotificationFrame
	require.NoError(t, json.Unmarshal(readFrame(t, aliceConn), &frame))
	assert.Equal(t, "notification", frame.Type)
	assert.Equal(t, notif.ID, frame.ID)
	assert.Equal(t, "Exam Alert", frame.Title)
	assert.Equal(t, "warning", frame.NotifType)

	// Bob gets nothing.
	bobConn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err = bobConn.ReadMessage()
	assert.Error(t, err, "untargeted connection must not receive the frame")
}
