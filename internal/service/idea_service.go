// FILE: internal/service/idea_service.go
package service

import (
	"context"
	"log"
	"strings"

	"idea-garden-be/internal/dto"
	"idea-garden-be/internal/entity"
	"idea-garden-be/internal/pkg/markdown"
	"idea-garden-be/internal/repository/contract"
	"idea-garden-be/pkg/events"
)

type IIdeaService interface {
	Create(ctx context.Context, principal *entity.Principal, req *dto.CreateIdeaRequest) (*dto.IdeaResponse, error)
	Show(ctx context.Context, principal *entity.Principal, id string) (*dto.IdeaResponse, error)
	List(ctx context.Context, principal *entity.Principal, statusFilter string) ([]*dto.IdeaResponse, error)
	Update(ctx context.Context, principal *entity.Principal, req *dto.UpdateIdeaRequest) (*dto.IdeaResponse, error)
	Search(ctx context.Context, principal *entity.Principal, query string) ([]*dto.IdeaResponse, error)
}

type ideaService struct {
	repository       contract.IIdeaRepository
	publisherService IPublisherService
	ideasRepoName    string
}

func NewIdeaService(
	repository contract.IIdeaRepository,
	publisherService IPublisherService,
	ideasRepoName string,
) IIdeaService {
	return &ideaService{
		repository:       repository,
		publisherService: publisherService,
		ideasRepoName:    ideasRepoName,
	}
}

func (s *ideaService) repoRef(principal *entity.Principal) contract.RepoRef {
	return contract.RepoRef{
		Token: principal.AccessToken,
		Owner: principal.Login,
		Repo:  s.ideasRepoName,
	}
}

func (s *ideaService) Create(ctx context.Context, principal *entity.Principal, req *dto.CreateIdeaRequest) (*dto.IdeaResponse, error) {
	ref := s.repoRef(principal)

	idea, err := entity.NewIdea(req.Title, req.Tags, req.Body)
	if err != nil {
		return nil, err
	}

	if err := s.repository.EnsureRepo(ctx, ref); err != nil {
		return nil, err
	}

	// No collision check beyond the store's own no-overwrite semantics: a
	// duplicate title on the same day surfaces as a conflict from the write.
	if err := s.repository.CreateFile(ctx, ref, idea.Id, markdown.SerializeIdea(idea)); err != nil {
		return nil, err
	}

	if err := s.publisherService.PublishIdeaActivity(ctx, events.NewIdeaCreatedEvent(principal.Login, idea.Id, idea.Title)); err != nil {
		log.Printf("[WARN] Failed to publish idea activity: %v", err)
	}

	return toIdeaResponse(idea), nil
}

func (s *ideaService) Show(ctx context.Context, principal *entity.Principal, id string) (*dto.IdeaResponse, error) {
	file, err := s.repository.GetFile(ctx, s.repoRef(principal), id)
	if err != nil {
		return nil, err
	}

	idea, err := markdown.ParseIdea(file.Content)
	if err != nil {
		return nil, err
	}

	return toIdeaResponse(idea), nil
}

// List fetches every file in the collection, one remote call per record.
// Deliberately O(n) and uncached: every read must be a live fetch or the
// optimistic-locking contract breaks.
func (s *ideaService) List(ctx context.Context, principal *entity.Principal, statusFilter string) ([]*dto.IdeaResponse, error) {
	ref := s.repoRef(principal)

	ids, err := s.repository.ListFiles(ctx, ref)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.IdeaResponse, 0, len(ids))
	for _, id := range ids {
		file, err := s.repository.GetFile(ctx, ref, id)
		if err != nil {
			return nil, err
		}
		idea, err := markdown.ParseIdea(file.Content)
		if err != nil {
			return nil, err
		}
		if statusFilter == "" || string(idea.Status) == statusFilter {
			result = append(result, toIdeaResponse(idea))
		}
	}

	return result, nil
}

func (s *ideaService) Update(ctx context.Context, principal *entity.Principal, req *dto.UpdateIdeaRequest) (*dto.IdeaResponse, error) {
	ref := s.repoRef(principal)

	file, err := s.repository.GetFile(ctx, ref, req.Id)
	if err != nil {
		return nil, err
	}

	idea, err := markdown.ParseIdea(file.Content)
	if err != nil {
		return nil, err
	}

	// Merge only the supplied fields; id and created_at never change.
	changed := make([]string, 0, 4)
	if req.Title != nil {
		idea.Title = *req.Title
		changed = append(changed, "title")
	}
	if req.Status != nil {
		idea.Status = entity.IdeaStatus(*req.Status)
		changed = append(changed, "status")
	}
	if req.Tags != nil {
		idea.Tags = *req.Tags
		changed = append(changed, "tags")
	}
	if req.Body != nil {
		idea.Body = *req.Body
		changed = append(changed, "body")
	}
	idea.UpdatedAt = entity.Today()

	if err := idea.Validate(); err != nil {
		return nil, err
	}

	if err := s.repository.UpdateFile(ctx, ref, req.Id, markdown.SerializeIdea(idea), file.Sha); err != nil {
		return nil, err
	}

	if err := s.publisherService.PublishIdeaActivity(ctx, events.NewIdeaUpdatedEvent(principal.Login, idea.Id, changed)); err != nil {
		log.Printf("[WARN] Failed to publish idea activity: %v", err)
	}

	return toIdeaResponse(idea), nil
}

// Search matches the lower-cased query as a substring of title, body, or any
// tag. No ranking.
func (s *ideaService) Search(ctx context.Context, principal *entity.Principal, query string) ([]*dto.IdeaResponse, error) {
	ref := s.repoRef(principal)

	ids, err := s.repository.ListFiles(ctx, ref)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	result := make([]*dto.IdeaResponse, 0)
	for _, id := range ids {
		file, err := s.repository.GetFile(ctx, ref, id)
		if err != nil {
			return nil, err
		}
		idea, err := markdown.ParseIdea(file.Content)
		if err != nil {
			return nil, err
		}
		if ideaMatches(idea, q) {
			result = append(result, toIdeaResponse(idea))
		}
	}

	return result, nil
}

func ideaMatches(idea *entity.Idea, q string) bool {
	if strings.Contains(strings.ToLower(idea.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(idea.Body), q) {
		return true
	}
	for _, tag := range idea.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func toIdeaResponse(idea *entity.Idea) *dto.IdeaResponse {
	return &dto.IdeaResponse{
		Id:        idea.Id,
		Title:     idea.Title,
		Status:    string(idea.Status),
		CreatedAt: idea.CreatedAt,
		UpdatedAt: idea.UpdatedAt,
		Tags:      idea.Tags,
		Body:      idea.Body,
		Summary:   markdown.IdeaToSummary(idea),
	}
}
