package alert

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeSeverityTable(t *testing.T) {
	tests := []struct {
		level     string
		wantTitle string
		wantBody  string
	}{
		{"LOW", "Self-Regulation Alert", "Ana is experiencing mild anxiety and using self-regulation strategies."},
		{"MEDIUM", "Self-Regulation Alert", "Ana has difficulty concentrating and needs support."},
		{"HIGH", "Elevated Self-Regulation Alert", "Ana is in emotional crisis and needs immediate help."},
		{"CRITICAL", "EMERGENCY: Immediate Attention Required", "Ana needs URGENT intervention, severe crisis."},
		{"SOMETHING_NEW", "Self-Regulation Alert", "Ana activated the self-regulation button."},
	}
	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			msg := Compose(Context{ChildName: "Ana", Level: tc.level})
			assert.Equal(t, tc.wantTitle, msg.Title)
			assert.Equal(t, tc.wantBody, msg.Body)
		})
	}
}

func TestComposePushPayloadStringCoercion(t *testing.T) {
	when := time.Date(2026, 3, 1, 14, 30, 0, 0, time.UTC)
	msg := Compose(Context{
		EventID:             "evt-1",
		ChildID:             "child-1",
		ChildName:           "Ana",
		Level:               "HIGH",
		Emotion:             "frustrated",
		AssistanceRequested: true,
		OccurredAt:          when,
	})

	data := msg.Payload.Data()
	assert.Equal(t, "SELF_REGULATION_ALERT", data["type"])
	assert.Equal(t, "evt-1", data["eventId"])
	assert.Equal(t, "true", data["assistanceRequested"])
	assert.Equal(t, "2026-03-01T14:30:00Z", data["timestamp"])
	assert.Equal(t, "frustrated", data["emotion"])
	_, hasTrigger := data["trigger"]
	assert.False(t, hasTrigger, "absent optional fields stay out of the payload")
}

func TestComposeEmailRendering(t *testing.T) {
	msg := Compose(Context{
		EventID:             "evt-1",
		ChildName:           "Ana",
		Level:               "CRITICAL",
		Trigger:             "loud noise",
		AssistanceRequested: true,
		OccurredAt:          time.Now(),
	})

	require.Contains(t, msg.Subject, "Ana")
	assert.Contains(t, msg.HTML, "loud noise")
	assert.Contains(t, msg.HTML, "requested immediate assistance")
	assert.Contains(t, msg.HTML, "#B71C1C")
	assert.Contains(t, msg.Text, "Severity: Critical")
	assert.Contains(t, msg.Text, "requested immediate assistance")
}

func TestComposeEmailEscapesChildName(t *testing.T) {
	msg := Compose(Context{ChildName: "<script>x</script>", Level: "LOW"})
	assert.NotContains(t, msg.HTML, "<script>")
}

func TestComposeWhatsAppText(t *testing.T) {
	msg := Compose(Context{ChildName: "Ana", Level: "HIGH", Emotion: "angry"})
	assert.True(t, strings.Contains(msg.WhatsAppText, "*Elevated Self-Regulation Alert*"))
	assert.Contains(t, msg.WhatsAppText, "*Emotion:* angry")
}

func TestComposeAssistanceBlockAbsentByDefault(t *testing.T) {
	msg := Compose(Context{ChildName: "Ana", Level: "LOW"})
	assert.NotContains(t, msg.HTML, "requested immediate assistance")
	assert.NotContains(t, msg.Text, "requested immediate assistance")
	assert.NotContains(t, msg.WhatsAppText, "requested immediate assistance")
}
