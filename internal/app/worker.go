package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-workforce/internal/attendance"
	"go-workforce/internal/directory"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/messaging/kafka/producer"
	"go-workforce/internal/schedule"
	"go-workforce/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker runs the outbox relay and the end-of-day absence sweep until a
// shutdown signal arrives.
func RunWorker() error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(kafkaBroker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	attendanceRepo := attendance.NewRepository(gormDB)
	scheduleProvider := schedule.NewRepository(gormDB)
	directoryRepo := directory.NewRepository(gormDB)
	attendanceService := attendance.NewService(sqlDB, attendanceRepo, scheduleProvider, directoryRepo, outboxRepo, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		3*time.Second,
	)

	go runAbsenceSweep(ctx, attendanceService, logger, sweepInterval())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}

func sweepInterval() time.Duration {
	if v := os.Getenv("ABSENCE_SWEEP_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return time.Hour
}

// runAbsenceSweep periodically marks employees without an attendance record
// for the previous (closed) day as ABSENT. The sweep is a no-op once every
// active employee has a row for that day, so the interval only bounds how
// soon after midnight the rows appear.
func runAbsenceSweep(
	ctx context.Context,
	svc attendance.Service,
	logger *zap.Logger,
	interval time.Duration,
) {
	log := logger.Named("absence_sweep")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("absence sweep started", zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			log.Info("absence sweep stopped")
			return
		case <-ticker.C:
			closedDay := time.Now().UTC().AddDate(0, 0, -1)
			marked, err := svc.MarkAbsentees(ctx, closedDay)
			if err != nil {
				log.Error("absence sweep failed",
					zap.String("date", closedDay.Format("2006-01-02")),
					zap.Error(err),
				)
				continue
			}
			if marked > 0 {
				log.Info("absence sweep marked employees",
					zap.String("date", closedDay.Format("2006-01-02")),
					zap.Int("marked", marked),
				)
			}
		}
	}
}
