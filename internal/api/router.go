package api

import (
	a "campus-events/internal/auth"
	"campus-events/internal/config"
	"campus-events/internal/message"
	mw "campus-events/internal/middleware"
	"campus-events/internal/notification"
	"campus-events/internal/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Router struct {
	hub *ws.Hub

	am *a.AuthMiddleware

	ah  *AuthHandlers
	eh  *EventHandlers
	ch  *ClubHandlers
	coh *CommunityHandlers
	th  *TravelHandlers
	clh *CollegeHandlers
	mh  *MessageHandlers
	nh  *NotificationHandlers
	wh  *WebSocketHandler
	uh  *UploadHandlers
}

func NewRouter(db *gorm.DB, cfg *config.Config) *Router {
	registry := ws.NewRegistry()
	hub := ws.NewHub(
		registry,
		message.NewMessageService(db),
		notification.NewNotificationService(db),
	)

	return &Router{
		hub: hub,
		am:  a.NewAuthMiddleware(cfg.JWTSecret),
		ah:  NewAuthHandlers(db, cfg.JWTSecret, cfg.TokenTTL),
		eh:  NewEventHandlers(db, hub),
		ch:  NewClubHandlers(db),
		coh: NewCommunityHandlers(db),
		th:  NewTravelHandlers(db),
		clh: NewCollegeHandlers(db),
		mh:  NewMessageHandlers(db),
		nh:  NewNotificationHandlers(db, hub),
		wh:  NewWebSocketHandler(hub, cfg.JWTSecret),
		uh:  NewUploadHandlers(cfg.StaticDir),
	}
}

// Hub exposes the delivery hub so other layers can push notifications.
func (r *Router) Hub() *ws.Hub {
	return r.hub
}

func (r *Router) RegisterRoutes(router *gin.Engine) {
	router.GET("/hc", HealthCheckHandler)

	authLimiter := mw.NewIPRateLimiter(mw.StrictRateLimit)

	v1 := router.Group("/api/v1")

	{
		public := v1.Group("/")
		public.POST("/users", mw.RateLimitMiddleware(authLimiter), r.ah.CreateUserHandler)
		public.POST("/login", mw.RateLimitMiddleware(authLimiter), r.ah.LoginHandler)

		public.GET("/events", r.eh.ListEventsHandler)
		public.GET("/events/:id", r.eh.GetEventHandler)
		public.GET("/clubs", r.ch.ListClubsHandler)
		public.GET("/clubs/:id", r.ch.GetClubHandler)
		public.GET("/communities", r.coh.ListCommunitiesHandler)
		public.GET("/travel", r.th.ListTravelPlansHandler)

		// Credential rides on the URI; the handler closes unauthenticated
		// sockets with the policy-violation code.
		public.GET("/ws/:token", r.wh.HandleWebSocket)
	}

	{
		protected := v1.Group("/")
		protected.Use(r.am.RequireAuth())
		protected.GET("/users/me", r.ah.MeHandler)
		protected.POST("/events", r.eh.CreateEventHandler)
		protected.POST("/events/:id/register", r.eh.RegisterParticipationHandler)
		protected.GET("/events/me", r.eh.ListMyParticipationsHandler)
		protected.POST("/travel", r.th.CreateTravelPlanHandler)
		protected.GET("/chat/:channel", r.mh.GetChannelMessagesHandler)
		protected.GET("/notifications", r.nh.ListNotificationsHandler)
		protected.POST("/notifications/read-all", r.nh.MarkAllReadHandler)
		protected.POST("/upload", r.uh.UploadImageHandler)
	}

	{
		admin := v1.Group("/")
		admin.Use(r.am.RequireAuth(), r.am.RequireSuperuser())
		admin.POST("/clubs", r.ch.CreateClubHandler)
		admin.POST("/communities", r.coh.CreateCommunityHandler)
		admin.GET("/colleges", r.clh.ListCollegesHandler)
		admin.POST("/colleges", r.clh.CreateCollegeHandler)
		admin.POST("/notifications/send", r.nh.SendNotificationHandler)
		admin.POST("/notifications/broadcast", r.nh.BroadcastSystemEventHandler)
		admin.GET("/ws/info", r.wh.GetConnectionInfo)
	}
}

func HealthCheckHandler(c *gin.Context) {
	c.String(200, "Running")
}
