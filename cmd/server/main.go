package main

import (
	"log"
	"os"
	"runtime/debug"

	"github.com/iota-uz/servicedesk/modules/requests/handlers"
	"github.com/iota-uz/servicedesk/modules/requests/infrastructure/persistence"
	"github.com/iota-uz/servicedesk/modules/requests/presentation/controllers"
	"github.com/iota-uz/servicedesk/modules/requests/services"
	"github.com/iota-uz/servicedesk/pkg/application"
	"github.com/iota-uz/servicedesk/pkg/configuration"
	"github.com/iota-uz/servicedesk/pkg/email"
	"github.com/iota-uz/servicedesk/pkg/eventbus"
	"github.com/iota-uz/servicedesk/pkg/metrics"
	"github.com/iota-uz/servicedesk/pkg/middleware"
	"github.com/iota-uz/servicedesk/pkg/server"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	app := application.New(&application.ApplicationOptions{
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
	})

	repo := persistence.NewRequestRepository()
	stats := services.NewStatsService(repo)
	app.RegisterServices(
		services.NewRequestService(repo, app.EventPublisher()),
		stats,
		services.NewExportService(repo, stats),
		services.NewSettingsService(services.NotificationSettings{
			Enabled:   conf.Notifications.Enabled,
			Recipient: conf.Notifications.Recipient,
		}),
	)

	var sender email.Sender
	if conf.SMTP.Configured() {
		sender = email.NewSMTPSender(conf.SMTP)
	} else {
		logger.Warn("SMTP_HOST is not set, notifications will only be logged")
		sender = email.NewLogSender(logger)
	}
	handlers.RegisterRequestEventHandlers(app, sender)

	app.RegisterMiddleware(middleware.WithLogger(logger))
	app.RegisterControllers(
		controllers.NewRequestAPIController(app),
		controllers.NewSettingsController(app, sender),
	)
	if conf.Prometheus.Enabled {
		app.RegisterControllers(metrics.NewPrometheusController(conf.Prometheus.Path))
	}

	log.Printf("Listening on: %s\n", conf.SocketAddress)
	if err := server.NewHTTPServer(app).Start(conf.SocketAddress); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
