package bootstrap

import (
	"fmt"

	"hospital-appointment-service/internal/repository"
	"hospital-appointment-service/internal/service"
)

// buildEventSink fans events out to every configured sink behind a
// non-blocking dispatcher, which it stores on app for shutdown.
func (app *App) buildEventSink(metrics *service.Metrics) (service.EventSink, error) {
	cfg := app.Config.Events
	log := app.Log

	sinks := []service.EventSink{service.NewLogEventSink(log), metrics}

	if cfg.ActivityLog {
		files, err := repository.NewFileStore(app.Config.Store.DataDir, log)
		if err != nil {
			return nil, fmt.Errorf("failed to open activity log: %w", err)
		}
		sinks = append(sinks, service.NewActivityLogSink(files, repository.ActivityLogFile, log))
	}

	if app.DB != nil {
		sinks = append(sinks, service.NewAuditService(log, repository.NewActivityEventRepository(app.DB)))
	}

	if app.RedisClient != nil && cfg.RedisChannel != "" {
		sinks = append(sinks, service.NewRedisEventSink(app.RedisClient, cfg.RedisChannel, log))
	}

	if len(cfg.KafkaBrokers) > 0 {
		app.Kafka = service.NewKafkaEventSink(service.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic), log)
		sinks = append(sinks, app.Kafka)
		log.Infof("Publishing events to kafka topic %s", cfg.KafkaTopic)
	}

	app.Events = service.NewEventDispatcher(service.NewMultiEventSink(sinks...), cfg.Buffer, log)
	app.Events.OnDropped(metrics.EventDropped)
	return app.Events, nil
}
