package consumer

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/mexanik619/College-Placement-Website/internal/events"

	"github.com/stretchr/testify/assert"
)

func TestAuditEntryFromMessage(t *testing.T) {
	t.Run("application received", func(t *testing.T) {
		payload, _ := json.Marshal(events.ApplicationReceivedEvent{
			EventType:     events.EventTypeApplicationReceived,
			ApplicationID: 42,
			StudentID:     7,
			JobID:         3,
			OccurredAt:    time.Now().UTC(),
		})

		entry, err := auditEntryFromMessage(payload)
		assert.NoError(t, err)
		assert.Equal(t, "APPLICATION_RECEIVED", entry.Action)
		assert.Equal(t, "student 7 applied to job 3", entry.Message)
		assert.Equal(t, uint(42), entry.Meta["application_id"])
	})

	t.Run("status changed", func(t *testing.T) {
		payload, _ := json.Marshal(events.ApplicationStatusChangedEvent{
			EventType:     events.EventTypeApplicationStatusChanged,
			ApplicationID: 42,
			FromStatus:    "pending",
			ToStatus:      "interview",
			OccurredAt:    time.Now().UTC(),
		})

		entry, err := auditEntryFromMessage(payload)
		assert.NoError(t, err)
		assert.Equal(t, "APPLICATION_STATUS_CHANGED", entry.Action)
		assert.Equal(t, "application 42 moved from pending to interview", entry.Message)
		assert.Equal(t, "interview", entry.Meta["to_status"])
	})

	t.Run("unknown event type rejected", func(t *testing.T) {
		_, err := auditEntryFromMessage([]byte(`{"event_type":"application_deleted"}`))
		assert.Error(t, err)
	})

	t.Run("malformed json rejected", func(t *testing.T) {
		_, err := auditEntryFromMessage([]byte(`{`))
		assert.Error(t, err)
	})
}
