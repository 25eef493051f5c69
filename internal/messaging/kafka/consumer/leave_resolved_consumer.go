package consumer

import (
	"context"
	"encoding/json"

	"go-workforce/internal/events"
	"go-workforce/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeLeaveResolved reads leave_resolved events and materializes the
// supervisor and relieving-staff notifications. Malformed messages commit
// and drop; transient failures leave the offset uncommitted for redelivery.
func ConsumeLeaveResolved(
	ctx context.Context,
	reader *kafkago.Reader,
	notificationService notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_resolved")
	log.Info("leave resolved consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave resolved consumer stopped")
				return
			}
			log.Error("fetch leave resolved message failed", zap.Error(err))
			continue
		}

		var event events.LeaveResolvedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode leave_resolved event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := notificationService.NotifyLeaveResolved(ctx, event); err != nil {
			log.Error("materialize leave notifications failed",
				zap.String("leave_request_id", event.LeaveRequestID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave resolved message failed", zap.Error(err))
			continue
		}

		log.Info("leave notifications materialized",
			zap.String("leave_request_id", event.LeaveRequestID),
			zap.Bool("supervisor_notified", event.SupervisorID != nil),
		)
	}
}
