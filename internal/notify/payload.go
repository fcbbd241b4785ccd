package notify

import (
	"strconv"
	"time"
)

// PayloadKind tags the typed push data payloads. The mobile client routes
// on the "type" data field.
type PayloadKind string

const (
	KindSelfRegulationAlert PayloadKind = "SELF_REGULATION_ALERT"
	KindTaskReminder        PayloadKind = "TASK_REMINDER"
	KindNewTask             PayloadKind = "NEW_TASK"
	KindTaskCompleted       PayloadKind = "TASK_COMPLETED"
	KindEmotionCheckin      PayloadKind = "EMOTION_CHECKIN"
	KindProgressUpdate      PayloadKind = "PROGRESS_UPDATE"
)

// Payload is a typed push data payload. Each kind carries its own fields
// and serializes itself to the string-valued map FCM requires.
type Payload interface {
	Kind() PayloadKind
	Data() map[string]string
}

// AlertPayload accompanies a self-regulation alert push. The push
// transport only accepts string values, so booleans and timestamps are
// coerced at the Data boundary.
type AlertPayload struct {
	EventID             string
	ChildID             string
	ChildName           string
	Level               string
	Emotion             string
	Trigger             string
	AssistanceRequested bool
	Timestamp           time.Time
}

func (p AlertPayload) Kind() PayloadKind { return KindSelfRegulationAlert }

func (p AlertPayload) Data() map[string]string {
	d := map[string]string{
		"type":                string(KindSelfRegulationAlert),
		"eventId":             p.EventID,
		"childId":             p.ChildID,
		"childName":           p.ChildName,
		"level":               p.Level,
		"assistanceRequested": strconv.FormatBool(p.AssistanceRequested),
		"timestamp":           p.Timestamp.UTC().Format(time.RFC3339),
	}
	if p.Emotion != "" {
		d["emotion"] = p.Emotion
	}
	if p.Trigger != "" {
		d["trigger"] = p.Trigger
	}
	return d
}

// TaskPayload accompanies task lifecycle pushes. Kind distinguishes
// reminders, new-task notices, and completion notices.
type TaskPayload struct {
	PayloadKind PayloadKind
	TaskID      string
	Title       string
}

func (p TaskPayload) Kind() PayloadKind { return p.PayloadKind }

func (p TaskPayload) Data() map[string]string {
	return map[string]string{
		"type":   string(p.PayloadKind),
		"taskId": p.TaskID,
		"title":  p.Title,
	}
}

// CheckinPayload accompanies an emotion check-in prompt push.
type CheckinPayload struct {
	ChildID string
}

func (p CheckinPayload) Kind() PayloadKind { return KindEmotionCheckin }

func (p CheckinPayload) Data() map[string]string {
	return map[string]string{
		"type":    string(KindEmotionCheckin),
		"childId": p.ChildID,
	}
}

// ProgressPayload accompanies a progress summary push to a parent.
type ProgressPayload struct {
	ChildID        string
	CompletedTasks int
	TotalTasks     int
}

func (p ProgressPayload) Kind() PayloadKind { return KindProgressUpdate }

func (p ProgressPayload) Data() map[string]string {
	return map[string]string{
		"type":      string(KindProgressUpdate),
		"childId":   p.ChildID,
		"completed": strconv.Itoa(p.CompletedTasks),
		"total":     strconv.Itoa(p.TotalTasks),
	}
}
