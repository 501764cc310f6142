package memory

import (
	"context"
	"sync"
	"time"

	"github.com/gfdmit/board-service/internal/repository"
)

// PostRepository is the in-memory post store; same record discipline as the
// board store.
type PostRepository struct {
	mu     sync.RWMutex
	posts  []repository.Post
	nextID int64
}

func NewPostRepository() *PostRepository {
	return &PostRepository{nextID: 1}
}

func (r *PostRepository) Create(ctx context.Context, post *repository.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	post.ID = r.nextID
	r.nextID++
	r.posts = append(r.posts, *post)
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*repository.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p := r.findActive(id)
	if p == nil {
		return nil, repository.ErrPostNotFound
	}
	out := *p
	return &out, nil
}

func (r *PostRepository) List(ctx context.Context, boardID *int64) ([]repository.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := []repository.Post{}
	for _, p := range r.posts {
		if p.DeletedAt != nil {
			continue
		}
		if boardID != nil && p.BoardID != *boardID {
			continue
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func (r *PostRepository) Update(ctx context.Context, id int64, upd repository.PostUpdate, now time.Time) (*repository.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.findActive(id)
	if p == nil {
		return nil, repository.ErrPostNotFound
	}
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Content != nil {
		p.Content = *upd.Content
	}
	p.UpdatedAt = now
	out := *p
	return &out, nil
}

func (r *PostRepository) SoftDelete(ctx context.Context, id int64, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.findActive(id)
	if p == nil {
		return repository.ErrPostNotFound
	}
	at := now
	p.DeletedAt = &at
	return nil
}

// callers must hold mu
func (r *PostRepository) findActive(id int64) *repository.Post {
	for i := range r.posts {
		if r.posts[i].ID == id && r.posts[i].DeletedAt == nil {
			return &r.posts[i]
		}
	}
	return nil
}
