// FILE: internal/entity/idea_entity.go
package entity

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

type IdeaStatus string

const (
	IdeaStatusSeed     IdeaStatus = "seed"
	IdeaStatusGrowing  IdeaStatus = "growing"
	IdeaStatusRefined  IdeaStatus = "refined"
	IdeaStatusArchived IdeaStatus = "archived"
	IdeaStatusDropped  IdeaStatus = "dropped"
)

// IdeaStatuses is the closed set of lifecycle states, in progression order.
var IdeaStatuses = []IdeaStatus{
	IdeaStatusSeed,
	IdeaStatusGrowing,
	IdeaStatusRefined,
	IdeaStatusArchived,
	IdeaStatusDropped,
}

func (s IdeaStatus) Valid() bool {
	for _, v := range IdeaStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Idea is one record backed by one markdown file in the user's ideas repo.
// CreatedAt/UpdatedAt are date strings (YYYY-MM-DD), not timestamps.
type Idea struct {
	Id        string
	Title     string
	Status    IdeaStatus
	CreatedAt string
	UpdatedAt string
	Tags      []string
	Body      string
}

// NewIdea builds a fresh record: id derived from today's date and the title,
// status starts at seed, both date stamps set to today.
func NewIdea(title string, tags []string, body string) (*Idea, error) {
	if title == "" {
		return nil, fmt.Errorf("title must not be empty")
	}
	if tags == nil {
		tags = []string{}
	}
	today := Today()
	return &Idea{
		Id:        GenerateId(title, today),
		Title:     title,
		Status:    IdeaStatusSeed,
		CreatedAt: today,
		UpdatedAt: today,
		Tags:      tags,
		Body:      body,
	}, nil
}

// Validate rejects any partially-formed record at the boundary.
func (i *Idea) Validate() error {
	switch {
	case i.Id == "":
		return fmt.Errorf("id must not be empty")
	case i.Title == "":
		return fmt.Errorf("title must not be empty")
	case !i.Status.Valid():
		return fmt.Errorf("status %q is not one of %v", i.Status, IdeaStatuses)
	case i.CreatedAt == "":
		return fmt.Errorf("created_at must not be empty")
	case i.UpdatedAt == "":
		return fmt.Errorf("updated_at must not be empty")
	case i.Tags == nil:
		return fmt.Errorf("tags must be a string sequence")
	}
	return nil
}

func Today() string {
	return time.Now().Format("2006-01-02")
}

var (
	slugStripRe    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaceRe    = regexp.MustCompile(`\s+`)
	slugCollapseRe = regexp.MustCompile(`-+`)
)

// GenerateId derives the stable file id: YYYY-MM-DD-slug. The slug lowercases
// the title, strips everything outside [a-z0-9\s-], collapses whitespace runs
// and repeated hyphens. A title that slugs down to nothing yields "untitled".
func GenerateId(title string, date string) string {
	slug := strings.ToLower(title)
	slug = slugStripRe.ReplaceAllString(slug, "")
	slug = strings.TrimSpace(slug)
	slug = slugSpaceRe.ReplaceAllString(slug, "-")
	slug = slugCollapseRe.ReplaceAllString(slug, "-")

	if slug == "" {
		return date + "-untitled"
	}
	return date + "-" + slug
}
