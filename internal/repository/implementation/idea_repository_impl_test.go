package implementation

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"idea-garden-be/internal/pkg/apperrors"
	"idea-garden-be/internal/pkg/githubclient"
	"idea-garden-be/internal/repository/contract"
)

func newTestRepo(handler http.HandlerFunc) (contract.IIdeaRepository, *httptest.Server) {
	ts := httptest.NewServer(handler)
	return NewIdeaRepository(githubclient.New(ts.URL)), ts
}

func testRef() contract.RepoRef {
	return contract.RepoRef{Token: "tok", Owner: "octocat", Repo: "ideas"}
}

func TestEnsureRepoExists(t *testing.T) {
	repo, ts := newTestRepo(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/octocat/ideas" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"name":"ideas"}`))
	})
	defer ts.Close()

	if err := repo.EnsureRepo(context.Background(), testRef()); err != nil {
		t.Fatalf("EnsureRepo failed: %v", err)
	}
}

func TestEnsureRepoMissingGivesGuidance(t *testing.T) {
	repo, ts := newTestRepo(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer ts.Close()

	err := repo.EnsureRepo(context.Background(), testRef())
	if err == nil {
		t.Fatal("want error for missing repo")
	}
	if !strings.Contains(err.Error(), "https://github.com/new?name=ideas") {
		t.Errorf("error %q should point at the repo creation page", err)
	}
}

func TestCreateFileSendsBase64Content(t *testing.T) {
	content := "---\nid: x\n---\n"
	var gotBody map[string]string
	repo, ts := newTestRepo(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if r.URL.Path != "/repos/octocat/ideas/contents/ideas/2025-04-01-x.md" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	})
	defer ts.Close()

	if err := repo.CreateFile(context.Background(), testRef(), "2025-04-01-x", content); err != nil {
		t.Fatalf("CreateFile failed: %v", err)
	}

	decoded, err := base64.StdEncoding.DecodeString(gotBody["content"])
	if err != nil || string(decoded) != content {
		t.Errorf("content = %q (decode err %v), want %q", decoded, err, content)
	}
	if gotBody["message"] != "Create idea: 2025-04-01-x" {
		t.Errorf("message = %q", gotBody["message"])
	}
	if _, hasSha := gotBody["sha"]; hasSha {
		t.Error("create must not send a sha")
	}
}

func TestCreateFileExistingIsConflict(t *testing.T) {
	for _, status := range []int{http.StatusUnprocessableEntity, http.StatusConflict} {
		repo, ts := newTestRepo(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		err := repo.CreateFile(context.Background(), testRef(), "2025-04-01-x", "content")
		ts.Close()

		if !errors.Is(err, apperrors.ErrConflict) {
			t.Errorf("status %d: err = %v, want ErrConflict", status, err)
		}
	}
}

func TestGetFileDecodesWrappedBase64(t *testing.T) {
	content := "---\nid: 2025-04-01-x\n---\n\nbody\n"
	encoded := base64.StdEncoding.EncodeToString([]byte(content))
	// The contents API hard-wraps base64 payloads.
	wrapped := encoded[:8] + "\n" + encoded[8:] + "\n"

	repo, ts := newTestRepo(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"content":%q,"sha":"abc123"}`, wrapped)
	})
	defer ts.Close()

	file, err := repo.GetFile(context.Background(), testRef(), "2025-04-01-x")
	if err != nil {
		t.Fatalf("GetFile failed: %v", err)
	}
	if file.Content != content {
		t.Errorf("Content = %q, want %q", file.Content, content)
	}
	if file.Sha != "abc123" {
		t.Errorf("Sha = %q, want abc123", file.Sha)
	}
}

func TestGetFileMissingIsNotFound(t *testing.T) {
	repo, ts := newTestRepo(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer ts.Close()

	_, err := repo.GetFile(context.Background(), testRef(), "2025-04-01-x")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateFileSendsSha(t *testing.T) {
	var gotBody map[string]string
	repo, ts := newTestRepo(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{}`))
	})
	defer ts.Close()

	if err := repo.UpdateFile(context.Background(), testRef(), "2025-04-01-x", "new content", "abc123"); err != nil {
		t.Fatalf("UpdateFile failed: %v", err)
	}
	if gotBody["sha"] != "abc123" {
		t.Errorf("sha = %q, want abc123", gotBody["sha"])
	}
	if gotBody["message"] != "Update idea: 2025-04-01-x" {
		t.Errorf("message = %q", gotBody["message"])
	}
}

func TestUpdateFileStaleShaIsConflict(t *testing.T) {
	for _, status := range []int{http.StatusConflict, http.StatusUnprocessableEntity} {
		repo, ts := newTestRepo(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		err := repo.UpdateFile(context.Background(), testRef(), "2025-04-01-x", "content", "stale")
		ts.Close()

		if !errors.Is(err, apperrors.ErrConflict) {
			t.Errorf("status %d: err = %v, want ErrConflict", status, err)
		}
	}
}

func TestListFiles(t *testing.T) {
	repo, ts := newTestRepo(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/octocat/ideas/contents/ideas" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`[
			{"name":"2025-04-01-a.md"},
			{"name":"README"},
			{"name":"2025-04-02-b.md"}
		]`))
	})
	defer ts.Close()

	ids, err := repo.ListFiles(context.Background(), testRef())
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	want := []string{"2025-04-01-a", "2025-04-02-b"}
	if len(ids) != len(want) || ids[0] != want[0] || ids[1] != want[1] {
		t.Errorf("ids = %v, want %v", ids, want)
	}
}

func TestListFilesMissingDirectoryIsEmpty(t *testing.T) {
	repo, ts := newTestRepo(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer ts.Close()

	ids, err := repo.ListFiles(context.Background(), testRef())
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("ids = %v, want empty", ids)
	}
}
