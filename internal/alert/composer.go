// Package alert implements the self-regulation alerting pipeline: event
// persistence, recipient resolution, message composition, and the
// multi-channel fan-out orchestration.
package alert

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"tora-app.io/tora/internal/notify"
)

// Severity levels of a self-regulation event, mirrored from the event
// schema enum.
const (
	LevelLow      = "LOW"
	LevelMedium   = "MEDIUM"
	LevelHigh     = "HIGH"
	LevelCritical = "CRITICAL"
)

// Context carries everything the composer needs about one activation.
type Context struct {
	EventID             string
	ChildID             string
	ChildName           string
	Level               string
	Emotion             string
	Trigger             string
	AssistanceRequested bool
	OccurredAt          time.Time
}

// Message is the composed per-channel content for one alert.
type Message struct {
	// Push channel.
	Title   string
	Body    string
	Payload notify.AlertPayload

	// Email channel.
	Subject string
	HTML    string
	Text    string

	// WhatsApp channel.
	WhatsAppText string
}

type levelMeta struct {
	title string
	body  string // fmt template with child name
	emoji string
	color string
	label string
}

// Severity lookup table. Unrecognized levels fall back to the generic
// entry so a schema drift never silences an alert.
var levelTable = map[string]levelMeta{
	LevelLow: {
		title: "Self-Regulation Alert",
		body:  "%s is experiencing mild anxiety and using self-regulation strategies.",
		emoji: "\U0001F7E2",
		color: "#4CAF50",
		label: "Low",
	},
	LevelMedium: {
		title: "Self-Regulation Alert",
		body:  "%s has difficulty concentrating and needs support.",
		emoji: "\U0001F7E1",
		color: "#FF9800",
		label: "Medium",
	},
	LevelHigh: {
		title: "Elevated Self-Regulation Alert",
		body:  "%s is in emotional crisis and needs immediate help.",
		emoji: "\U0001F534",
		color: "#F44336",
		label: "High",
	},
	LevelCritical: {
		title: "EMERGENCY: Immediate Attention Required",
		body:  "%s needs URGENT intervention, severe crisis.",
		emoji: "\U0001F6A8",
		color: "#B71C1C",
		label: "Critical",
	},
}

var genericLevel = levelMeta{
	title: "Self-Regulation Alert",
	body:  "%s activated the self-regulation button.",
	emoji: "\U0001F514",
	color: "#607D8B",
	label: "Alert",
}

var emailTemplate = template.Must(template.New("alert_email").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; margin: 0; padding: 16px;">
  <div style="border-left: 6px solid {{.Color}}; padding: 12px 16px; background: #fafafa;">
    <h2 style="margin-top: 0; color: {{.Color}};">{{.Emoji}} {{.Title}}</h2>
    <p>{{.Body}}</p>
    <table style="border-collapse: collapse;">
      <tr><td style="padding: 4px 12px 4px 0;"><b>Child</b></td><td>{{.ChildName}}</td></tr>
      <tr><td style="padding: 4px 12px 4px 0;"><b>Severity</b></td><td>{{.Label}}</td></tr>
      {{if .Emotion}}<tr><td style="padding: 4px 12px 4px 0;"><b>Emotion</b></td><td>{{.Emotion}}</td></tr>{{end}}
      {{if .Trigger}}<tr><td style="padding: 4px 12px 4px 0;"><b>Trigger</b></td><td>{{.Trigger}}</td></tr>{{end}}
      <tr><td style="padding: 4px 12px 4px 0;"><b>Time</b></td><td>{{.When}}</td></tr>
    </table>
    {{if .AssistanceRequested}}
    <div style="margin-top: 12px; padding: 10px; background: #B71C1C; color: #fff; font-weight: bold;">
      The child has requested immediate assistance.
    </div>
    {{end}}
  </div>
</body>
</html>`))

// Compose builds the per-channel content for an alert. Pure function; the
// orchestrator calls it once and hands each channel its slice.
func Compose(c Context) Message {
	meta, ok := levelTable[c.Level]
	if !ok {
		meta = genericLevel
	}
	body := fmt.Sprintf(meta.body, c.ChildName)
	when := c.OccurredAt.UTC().Format("2006-01-02 15:04 UTC")

	var html strings.Builder
	// The template only fails on an invalid data shape, which the struct
	// below rules out.
	_ = emailTemplate.Execute(&html, struct {
		Title, Body, ChildName, Emotion, Trigger string
		Emoji, Color, Label, When                string
		AssistanceRequested                      bool
	}{
		Title: meta.title, Body: body, ChildName: c.ChildName,
		Emotion: c.Emotion, Trigger: c.Trigger,
		Emoji: meta.emoji, Color: meta.color, Label: meta.label, When: when,
		AssistanceRequested: c.AssistanceRequested,
	})

	return Message{
		Title: meta.title,
		Body:  body,
		Payload: notify.AlertPayload{
			EventID:             c.EventID,
			ChildID:             c.ChildID,
			ChildName:           c.ChildName,
			Level:               c.Level,
			Emotion:             c.Emotion,
			Trigger:             c.Trigger,
			AssistanceRequested: c.AssistanceRequested,
			Timestamp:           c.OccurredAt,
		},
		Subject:      fmt.Sprintf("%s %s: %s", meta.emoji, meta.title, c.ChildName),
		HTML:         html.String(),
		Text:         composeText(meta, c, body, when),
		WhatsAppText: composeWhatsApp(meta, c, body, when),
	}
}

func composeText(meta levelMeta, c Context, body, when string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n%s\n\n", meta.title, body)
	fmt.Fprintf(&b, "Child: %s\nSeverity: %s\n", c.ChildName, meta.label)
	if c.Emotion != "" {
		fmt.Fprintf(&b, "Emotion: %s\n", c.Emotion)
	}
	if c.Trigger != "" {
		fmt.Fprintf(&b, "Trigger: %s\n", c.Trigger)
	}
	fmt.Fprintf(&b, "Time: %s\n", when)
	if c.AssistanceRequested {
		b.WriteString("\nThe child has requested immediate assistance.\n")
	}
	return b.String()
}

func composeWhatsApp(meta levelMeta, c Context, body, when string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s *%s*\n\n%s\n\n", meta.emoji, meta.title, body)
	fmt.Fprintf(&b, "*Child:* %s\n*Severity:* %s\n", c.ChildName, meta.label)
	if c.Emotion != "" {
		fmt.Fprintf(&b, "*Emotion:* %s\n", c.Emotion)
	}
	fmt.Fprintf(&b, "*Time:* %s\n", when)
	if c.AssistanceRequested {
		b.WriteString("\n\U0001F198 *The child has requested immediate assistance.*\n")
	}
	return b.String()
}
