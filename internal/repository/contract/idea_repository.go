package contract

import (
	"context"
)

// RepoRef addresses one user's ideas repository on GitHub. The token is the
// caller's bearer credential, injected per request; nothing here is persisted.
type RepoRef struct {
	Token string
	Owner string
	Repo  string
}

// IdeaFile is the raw stored form of one record plus its revision marker
// (the GitHub blob SHA). The SHA must be handed back on update; the contents
// API rejects a write whose SHA no longer matches the file.
type IdeaFile struct {
	Content string
	Sha     string
}

// IIdeaRepository defines remote-file operations over the ideas collection
type IIdeaRepository interface {
	EnsureRepo(ctx context.Context, ref RepoRef) error
	CreateFile(ctx context.Context, ref RepoRef, id string, content string) error
	GetFile(ctx context.Context, ref RepoRef, id string) (*IdeaFile, error)
	UpdateFile(ctx context.Context, ref RepoRef, id string, content string, sha string) error
	ListFiles(ctx context.Context, ref RepoRef) ([]string, error)
}
