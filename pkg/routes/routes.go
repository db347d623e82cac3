package pkg

import (
	"HalalGuardian/internal/alert"
	"HalalGuardian/internal/config"
	"HalalGuardian/internal/content"
	"HalalGuardian/internal/directory"
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

var EchoModules = fx.Module("echo",
	fx.Provide(NewEchoServer),
	fx.Provide(config.NewGeminiConfig),
	fx.Provide(config.NewSMTPConfig),
	fx.Provide(directory.NewService),
	fx.Provide(content.NewService),
	fx.Provide(func(svc *content.Service) alert.ContentDrafter { return svc }),
	fx.Provide(alert.NewSMTPSimulator),
	fx.Provide(alert.NewAlertService),
	fx.Provide(alert.NewAlertHandler),
	fx.Invoke(RegisterRoutes))

func NewEchoServer(lc fx.Lifecycle) *echo.Echo {
	e := echo.New()
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:5173"},
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	port := ":8080"
	log.Println("Server running on http://localhost" + port[1:])
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(port); err != nil {
					log.Fatal("Failed to start the server:", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("shutting down the server ...")
			return e.Shutdown(ctx)
		},
	})
	return e
}

func RegisterRoutes(e *echo.Echo, alertHandler *alert.AlertHandler) {
	api := e.Group("/api")
	api.GET("/outlets", alertHandler.ListOutlets)
	api.GET("/users", alertHandler.ListUsers)
	api.GET("/config/smtp", alertHandler.SMTPConfig)
	api.GET("/alerts/defaults", alertHandler.DefaultDetails)
	api.POST("/alerts/generate", alertHandler.GenerateAlert)
}
