package router

import (
	"fmt"

	"github.com/changhyeonkim/splearn/internal/auth"
	"github.com/changhyeonkim/splearn/internal/config"
	"github.com/changhyeonkim/splearn/internal/member"
	"github.com/changhyeonkim/splearn/internal/meta"
	"github.com/changhyeonkim/splearn/internal/shared/database"
	"github.com/changhyeonkim/splearn/internal/shared/middleware"
	"github.com/changhyeonkim/splearn/internal/shared/password"
	"github.com/changhyeonkim/splearn/internal/shared/token"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB) error {
	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)

	// repository
	memberRepository := member.NewMemberRepository()

	// shared services
	tokenManager := token.NewJWTManager(cfg)
	passwordEncoder, err := password.NewBcryptEncoder(cfg.Security.BcryptCost)
	if err != nil {
		return fmt.Errorf("비밀번호 인코더 생성 실패: %w", err)
	}

	// service
	memberService := member.NewMemberService(db.DB, memberRepository, passwordEncoder)
	authService := auth.NewAuthService(memberService, tokenManager)

	// handler
	authHandler := auth.NewAuthHandler(authService)
	memberHandler := member.NewMemberHandler(memberService)

	// API v1 routes
	authV1 := router.Group("/api/v1/auth")
	{
		authV1.POST("/signup", authHandler.Signup)
		authV1.POST("/login", authHandler.Login)
	}

	memberV1 := router.Group("/api/v1/members")
	memberV1.Use(middleware.JWT(tokenManager))
	{
		memberV1.GET("/me", memberHandler.GetProfile)
		memberV1.POST("/me/activate", memberHandler.Activate)
		memberV1.POST("/me/deactivate", memberHandler.Deactivate)
	}

	return nil
}
