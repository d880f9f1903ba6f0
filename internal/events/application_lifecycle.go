package events

import "time"

const ApplicationLifecycleTopic = "placement.application.lifecycle.v1"

const (
	EventTypeApplicationReceived      = "application_received"
	EventTypeApplicationStatusChanged = "application_status_changed"
)

type ApplicationReceivedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	ApplicationID uint      `json:"application_id"`
	StudentID     uint      `json:"student_id"`
	JobID         uint      `json:"job_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type ApplicationStatusChangedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	ApplicationID uint      `json:"application_id"`
	FromStatus    string    `json:"from_status"`
	ToStatus      string    `json:"to_status"`
	OccurredAt    time.Time `json:"occurred_at"`
}
