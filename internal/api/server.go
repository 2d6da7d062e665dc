package api

import (
	"campus-events/internal/config"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Serve(db *gorm.DB, cfg *config.Config) error {
	r := gin.Default()

	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			return err
		}
	}

	r.Static("/static", cfg.StaticDir)

	router := NewRouter(db, cfg)
	router.RegisterRoutes(r)

	return r.Run(cfg.ListenAddr)
}
