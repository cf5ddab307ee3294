package implementation

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"idea-garden-be/internal/pkg/apperrors"
	"idea-garden-be/internal/pkg/githubclient"
	"idea-garden-be/internal/repository/contract"
)

type IdeaRepositoryImpl struct {
	client *githubclient.Client
}

func NewIdeaRepository(client *githubclient.Client) contract.IIdeaRepository {
	return &IdeaRepositoryImpl{client: client}
}

func ideaPath(ref contract.RepoRef, id string) string {
	return fmt.Sprintf("/repos/%s/%s/contents/ideas/%s.md", ref.Owner, ref.Repo, id)
}

// EnsureRepo checks that the backing repository exists. A 404 is turned into
// actionable guidance (create the repo, then retry) rather than a raw status.
func (r *IdeaRepositoryImpl) EnsureRepo(ctx context.Context, ref contract.RepoRef) error {
	_, err := r.client.Call(ctx, http.MethodGet, fmt.Sprintf("/repos/%s/%s", ref.Owner, ref.Repo), ref.Token, nil)
	if apperrors.IsUpstreamStatus(err, http.StatusNotFound) {
		return fmt.Errorf(
			"Repository not found. Create it at https://github.com/new?name=%s&private=true&description=Idea+management+repository then retry.",
			ref.Repo,
		)
	}
	return err
}

func (r *IdeaRepositoryImpl) CreateFile(ctx context.Context, ref contract.RepoRef, id string, content string) error {
	_, err := r.client.Call(ctx, http.MethodPut, ideaPath(ref, id), ref.Token, map[string]string{
		"message": "Create idea: " + id,
		"content": base64.StdEncoding.EncodeToString([]byte(content)),
	})
	// The contents API refuses to create over an existing file. The id scheme
	// can collide (same title, same day); surface that as a conflict.
	if apperrors.IsUpstreamStatus(err, http.StatusUnprocessableEntity) || apperrors.IsUpstreamStatus(err, http.StatusConflict) {
		return fmt.Errorf("idea %s already exists: %w", id, apperrors.ErrConflict)
	}
	return err
}

func (r *IdeaRepositoryImpl) GetFile(ctx context.Context, ref contract.RepoRef, id string) (*contract.IdeaFile, error) {
	data, err := r.client.Call(ctx, http.MethodGet, ideaPath(ref, id), ref.Token, nil)
	if err != nil {
		if apperrors.IsUpstreamStatus(err, http.StatusNotFound) {
			return nil, fmt.Errorf("idea %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}

	var payload struct {
		Content string `json:"content"`
		Sha     string `json:"sha"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}

	// The API wraps base64 content with newlines.
	raw, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(payload.Content, "\n", ""))
	if err != nil {
		return nil, err
	}

	return &contract.IdeaFile{Content: string(raw), Sha: payload.Sha}, nil
}

func (r *IdeaRepositoryImpl) UpdateFile(ctx context.Context, ref contract.RepoRef, id string, content string, sha string) error {
	_, err := r.client.Call(ctx, http.MethodPut, ideaPath(ref, id), ref.Token, map[string]string{
		"message": "Update idea: " + id,
		"content": base64.StdEncoding.EncodeToString([]byte(content)),
		"sha":     sha,
	})
	// A stale SHA means a concurrent writer won; the caller must re-fetch.
	if apperrors.IsUpstreamStatus(err, http.StatusConflict) || apperrors.IsUpstreamStatus(err, http.StatusUnprocessableEntity) {
		return fmt.Errorf("idea %s has a newer revision: %w", id, apperrors.ErrConflict)
	}
	return err
}

// ListFiles enumerates the ideas directory. A missing repo or directory reads
// as an empty collection here, unlike GetFile where 404 is a hard error.
func (r *IdeaRepositoryImpl) ListFiles(ctx context.Context, ref contract.RepoRef) ([]string, error) {
	data, err := r.client.Call(ctx, http.MethodGet, fmt.Sprintf("/repos/%s/%s/contents/ideas", ref.Owner, ref.Repo), ref.Token, nil)
	if err != nil {
		if apperrors.IsUpstreamStatus(err, http.StatusNotFound) {
			return []string{}, nil
		}
		return nil, err
	}

	var entries []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasSuffix(e.Name, ".md") {
			ids = append(ids, strings.TrimSuffix(e.Name, ".md"))
		}
	}
	return ids, nil
}
