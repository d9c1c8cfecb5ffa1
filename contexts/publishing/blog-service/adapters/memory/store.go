package memory

import (
	"context"
	"sort"
	"sync"

	"inkwell/contexts/publishing/blog-service/domain/entities"
	domainerrors "inkwell/contexts/publishing/blog-service/domain/errors"
)

// Store is an in-memory BlogRepository used by tests and the in-memory
// module wiring.
type Store struct {
	mu         sync.RWMutex
	postsByID  map[int64]entities.BlogPost
	nextBlogID int64
}

func NewStore() *Store {
	return &Store{
		postsByID:  make(map[int64]entities.BlogPost),
		nextBlogID: 1,
	}
}

func (s *Store) CreatePost(_ context.Context, post entities.BlogPost) (entities.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post.BlogID = s.nextBlogID
	s.nextBlogID++
	s.postsByID[post.BlogID] = post
	return post, nil
}

func (s *Store) ListPosts(_ context.Context) ([]entities.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.BlogPost, 0, len(s.postsByID))
	for _, post := range s.postsByID {
		items = append(items, post)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].BlogID < items[j].BlogID })
	return items, nil
}

func (s *Store) UpdatePost(_ context.Context, blogID int64, title string, body string) (entities.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.postsByID[blogID]
	if !ok {
		return entities.BlogPost{}, domainerrors.ErrBlogNotFound
	}
	post.Title = title
	post.Body = body
	s.postsByID[blogID] = post
	return post, nil
}

func (s *Store) DeletePost(_ context.Context, blogID int64) (entities.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.postsByID[blogID]
	if !ok {
		return entities.BlogPost{}, domainerrors.ErrBlogNotFound
	}
	delete(s.postsByID, blogID)
	return post, nil
}
