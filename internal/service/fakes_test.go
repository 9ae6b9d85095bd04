package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/basel-ax/coloringbook/internal/domain"
)

type savedObject struct {
	contentType string
	data        []byte
}

// memoryRepository is an in-memory ArtifactRepository. Save fails with
// failWith for keys containing failOn.
type memoryRepository struct {
	mu       sync.Mutex
	bucket   string
	objects  map[string]savedObject
	order    []string
	failOn   string
	failWith error
}

func newMemoryRepository(bucket string) *memoryRepository {
	return &memoryRepository{bucket: bucket, objects: make(map[string]savedObject)}
}

func (r *memoryRepository) Save(ctx context.Context, key, contentType string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failOn != "" && strings.Contains(key, r.failOn) {
		return r.failWith
	}
	r.objects[key] = savedObject{contentType: contentType, data: data}
	r.order = append(r.order, key)
	return nil
}

func (r *memoryRepository) Bucket() string {
	return r.bucket
}

func (r *memoryRepository) keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

type stubRenderer struct {
	err        error
	lastPrompt string
	lastUserID string
}

func (r *stubRenderer) Render(prompt, userID string) (*domain.RenderedArtifacts, error) {
	r.lastPrompt, r.lastUserID = prompt, userID
	if r.err != nil {
		return nil, r.err
	}
	return &domain.RenderedArtifacts{Image: []byte("png"), PDF: []byte("%PDF-")}, nil
}

var errStorage = errors.New("googleapi: Error 403: caller does not have storage.objects.create access")
