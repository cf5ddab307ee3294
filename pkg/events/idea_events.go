package events

import "time"

const (
	EventIdeaCreated = "IDEA_CREATED"
	EventIdeaUpdated = "IDEA_UPDATED"
)

// NewIdeaCreatedEvent records a successful create for the activity trail.
func NewIdeaCreatedEvent(login, ideaId, title string) Event {
	return BaseEvent{
		Type: EventIdeaCreated,
		Data: map[string]interface{}{
			"login":   login,
			"idea_id": ideaId,
			"title":   title,
		},
		OccurredAt: time.Now(),
	}
}

// NewIdeaUpdatedEvent records a successful update for the activity trail.
func NewIdeaUpdatedEvent(login, ideaId string, fields []string) Event {
	return BaseEvent{
		Type: EventIdeaUpdated,
		Data: map[string]interface{}{
			"login":   login,
			"idea_id": ideaId,
			"fields":  fields,
		},
		OccurredAt: time.Now(),
	}
}
