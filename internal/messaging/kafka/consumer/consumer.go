package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mexanik619/College-Placement-Website/internal/bootstrap"
	"github.com/mexanik619/College-Placement-Website/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeApplicationLifecycle feeds the placement-office audit trail from the
// application lifecycle topic. Malformed messages are committed and skipped;
// audit logging is best-effort, so every decoded message is committed.
func ConsumeApplicationLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.application_lifecycle")
	log.Info("application lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("application lifecycle consumer stopped")
				return
			}
			log.Error("fetch application lifecycle message failed", zap.Error(err))
			continue
		}

		entry, err := auditEntryFromMessage(msg.Value)
		if err != nil {
			log.Error("decode application lifecycle event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		auditLogger.Log(ctx, entry)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit application lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("application lifecycle event audited",
			zap.String("action", entry.Action),
		)
	}
}

func auditEntryFromMessage(payload []byte) (bootstrap.AuditLog, error) {
	var envelope struct {
		EventType string `json:"event_type"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return bootstrap.AuditLog{}, err
	}

	switch envelope.EventType {
	case events.EventTypeApplicationReceived:
		var event events.ApplicationReceivedEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return bootstrap.AuditLog{}, err
		}
		return bootstrap.AuditLog{
			Action:  "APPLICATION_RECEIVED",
			Message: fmt.Sprintf("student %d applied to job %d", event.StudentID, event.JobID),
			Meta: map[string]any{
				"application_id": event.ApplicationID,
				"student_id":     event.StudentID,
				"job_id":         event.JobID,
				"request_id":     event.RequestID,
				"occurred_at":    event.OccurredAt,
			},
		}, nil

	case events.EventTypeApplicationStatusChanged:
		var event events.ApplicationStatusChangedEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return bootstrap.AuditLog{}, err
		}
		return bootstrap.AuditLog{
			Action:  "APPLICATION_STATUS_CHANGED",
			Message: fmt.Sprintf("application %d moved from %s to %s", event.ApplicationID, event.FromStatus, event.ToStatus),
			Meta: map[string]any{
				"application_id": event.ApplicationID,
				"from_status":    event.FromStatus,
				"to_status":      event.ToStatus,
				"request_id":     event.RequestID,
				"occurred_at":    event.OccurredAt,
			},
		}, nil

	default:
		return bootstrap.AuditLog{}, fmt.Errorf("unknown event type: %q", envelope.EventType)
	}
}
