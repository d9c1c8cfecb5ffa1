package application

import (
	"context"
	"log/slog"

	"inkwell/contexts/publishing/blog-service/domain/entities"
	domainerrors "inkwell/contexts/publishing/blog-service/domain/errors"
	"inkwell/contexts/publishing/blog-service/ports"
)

// Service implements blog CRUD. Authorization happens upstream in the
// platform middleware; by the time a call lands here the caller's role has
// already been checked.
type Service struct {
	Posts  ports.BlogRepository
	Logger *slog.Logger
}

// CreatePost inserts a post owned by userID. Content is accepted as-is;
// nothing enforces title or body shape.
func (s Service) CreatePost(ctx context.Context, userID int64, title string, body string) (entities.BlogPost, error) {
	post, err := s.Posts.CreatePost(ctx, entities.BlogPost{
		UserID: userID,
		Title:  title,
		Body:   body,
	})
	if err != nil {
		return entities.BlogPost{}, err
	}

	ResolveLogger(s.Logger).Info("blog post created",
		"event", "blog_post_created",
		"module", "publishing/blog-service",
		"layer", "application",
		"blog_id", post.BlogID,
		"user_id", post.UserID,
	)
	return post, nil
}

func (s Service) ListPosts(ctx context.Context) ([]entities.BlogPost, error) {
	return s.Posts.ListPosts(ctx)
}

func (s Service) UpdatePost(ctx context.Context, blogID int64, title string, body string) (entities.BlogPost, error) {
	if blogID <= 0 {
		return entities.BlogPost{}, domainerrors.ErrInvalidRequest
	}
	return s.Posts.UpdatePost(ctx, blogID, title, body)
}

func (s Service) DeletePost(ctx context.Context, blogID int64) (entities.BlogPost, error) {
	if blogID <= 0 {
		return entities.BlogPost{}, domainerrors.ErrInvalidRequest
	}
	post, err := s.Posts.DeletePost(ctx, blogID)
	if err != nil {
		return entities.BlogPost{}, err
	}

	ResolveLogger(s.Logger).Info("blog post deleted",
		"event", "blog_post_deleted",
		"module", "publishing/blog-service",
		"layer", "application",
		"blog_id", blogID,
	)
	return post, nil
}
