package dto

type CreateIdeaRequest struct {
	Title string   `json:"title" validate:"required"`
	Tags  []string `json:"tags"`
	Body  string   `json:"body"`
}

// UpdateIdeaRequest carries a partial edit: nil fields are left untouched.
type UpdateIdeaRequest struct {
	Id     string
	Title  *string   `json:"title"`
	Status *string   `json:"status" validate:"omitempty,oneof=seed growing refined archived dropped"`
	Tags   *[]string `json:"tags"`
	Body   *string   `json:"body"`
}

type IdeaResponse struct {
	Id        string   `json:"id"`
	Title     string   `json:"title"`
	Status    string   `json:"status"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
	Tags      []string `json:"tags"`
	Body      string   `json:"body"`
	Summary   string   `json:"summary"`
}

type PublishIdeaActivityMessage struct {
	EventType  string                 `json:"event_type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt string                 `json:"occurred_at"`
}
