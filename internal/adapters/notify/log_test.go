package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats/internal/domain"
	"ats/internal/ports"
)

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := LogNotifier{Logger: slog.New(slog.NewJSONHandler(&buf, nil))}
	from := domain.StageTerna
	err := n.Notify(context.Background(), ports.StageEvent{
		ID:            "ev-1",
		ApplicationID: "app-1",
		FromStage:     &from,
		ToStage:       domain.StageContactPending,
		Actor:         "consultant-1",
		OccurredAt:    time.Now(),
		Attempts:      1,
	})
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, EventStageChanged, line["msg"])
	assert.Equal(t, "terna", line["from"])
	assert.Equal(t, "contact_pending", line["to"])
	assert.Equal(t, "app-1", line["application_id"])
}
