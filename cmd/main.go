package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/Polceze/taskman/broker"
	"github.com/Polceze/taskman/config"
	"github.com/Polceze/taskman/database"
	"github.com/Polceze/taskman/routes"
	"github.com/Polceze/taskman/services"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	if !cfg.Debug || cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Change events are optional; the API keeps working without NATS.
	var producer broker.Producer = broker.NopProducer{}
	if cfg.NatsURL != "" {
		natsProducer, err := broker.InitProducer(cfg)
		if err != nil {
			log.Printf("Warning: Failed to initialize NATS producer: %v", err)
			log.Println("The application will continue, but task change events will not be published")
		} else {
			producer = natsProducer
			log.Printf("Publishing task events on %v", broker.TaskSubjects(cfg.NatsSubjectPrefix))
		}
	}
	events := broker.NewEventPublisher(producer, cfg.NatsSubjectPrefix)

	taskService := services.NewTaskService(events)
	router := routes.SetupRouter(cfg, db, taskService)

	server := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: router,
	}

	go func() {
		log.Printf("%s %s is running on port %s", cfg.AppName, cfg.AppVersion, cfg.AppPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				log.Println("Shutting down server...")
				return server.Shutdown(ctx)
			},
			"event-publisher": func(ctx context.Context) error {
				events.Close()
				return nil
			},
		},
	)

	exitCode := <-wait
	db.Close()
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}
