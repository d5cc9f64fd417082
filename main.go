package main

import (
	"log"

	"github.com/gigboard/listing-service/config"
	"github.com/gigboard/listing-service/internal/handler"
	"github.com/gigboard/listing-service/internal/middleware"
	"github.com/gigboard/listing-service/internal/repository"
	"github.com/gigboard/listing-service/internal/service"
	"github.com/gigboard/listing-service/pkg/database"
	"github.com/gigboard/listing-service/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ is optional: without a broker the directory still serves
	// and mutates listings, it just announces nothing.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	}

	// Repositories
	venueRepo := repository.NewVenueRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	showRepo := repository.NewShowRepository(db)

	// Services
	venueSvc := service.NewVenueService(venueRepo, showRepo, publisher)
	artistSvc := service.NewArtistService(artistRepo, showRepo, publisher)
	showSvc := service.NewShowService(showRepo, artistRepo, venueRepo, publisher)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "listing-service"})
	})

	handler.NewVenueHandler(venueSvc).RegisterRoutes(e)
	handler.NewArtistHandler(artistSvc).RegisterRoutes(e)
	handler.NewShowHandler(showSvc).RegisterRoutes(e)

	log.Printf("Listing Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
