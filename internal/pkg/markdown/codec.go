// FILE: internal/pkg/markdown/codec.go

// Package markdown converts Idea records to and from their stored shape:
// a YAML front-matter block between "---" delimiters followed by an optional
// free-text body.
package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"idea-garden-be/internal/entity"
	"idea-garden-be/internal/pkg/apperrors"

	"gopkg.in/yaml.v3"
)

var frontmatterRe = regexp.MustCompile(`(?s)^---\n(.*?)\n---\n?(.*)$`)

type frontmatter struct {
	Id        string   `yaml:"id"`
	Title     string   `yaml:"title"`
	Status    string   `yaml:"status"`
	CreatedAt string   `yaml:"created_at"`
	UpdatedAt string   `yaml:"updated_at"`
	Tags      []string `yaml:"tags"`
}

// ParseIdea decodes a stored file. A missing delimiter pair is a delimiter
// error; anything wrong inside the front-matter is a schema error.
func ParseIdea(content string) (*entity.Idea, error) {
	m := frontmatterRe.FindStringSubmatch(content)
	if m == nil {
		return nil, apperrors.NewDelimiterError("missing frontmatter delimiters")
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(m[1]), &fm); err != nil {
		return nil, apperrors.NewSchemaError(fmt.Sprintf("frontmatter is not a valid mapping: %v", err))
	}

	idea := &entity.Idea{
		Id:        fm.Id,
		Title:     fm.Title,
		Status:    entity.IdeaStatus(fm.Status),
		CreatedAt: fm.CreatedAt,
		UpdatedAt: fm.UpdatedAt,
		Tags:      fm.Tags,
		Body:      strings.TrimSpace(m[2]),
	}
	if err := idea.Validate(); err != nil {
		return nil, apperrors.NewSchemaError(err.Error())
	}

	return idea, nil
}

// SerializeIdea emits the canonical stored shape. The body section is omitted
// entirely when the body is empty.
func SerializeIdea(idea *entity.Idea) string {
	fm := frontmatter{
		Id:        idea.Id,
		Title:     idea.Title,
		Status:    string(idea.Status),
		CreatedAt: idea.CreatedAt,
		UpdatedAt: idea.UpdatedAt,
		Tags:      idea.Tags,
	}
	if fm.Tags == nil {
		fm.Tags = []string{}
	}

	raw, _ := yaml.Marshal(&fm)
	block := strings.TrimRight(string(raw), "\n")

	if idea.Body != "" {
		return fmt.Sprintf("---\n%s\n---\n\n%s\n", block, idea.Body)
	}
	return fmt.Sprintf("---\n%s\n---\n", block)
}

// IdeaToSummary renders the one-line listing form: "[status] title (date) #tags".
func IdeaToSummary(idea *entity.Idea) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s (%s)", idea.Status, idea.Title, idea.CreatedAt)
	for _, tag := range idea.Tags {
		sb.WriteString(" #")
		sb.WriteString(tag)
	}
	return sb.String()
}
