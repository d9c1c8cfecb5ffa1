package ports

import (
	"context"

	"inkwell/contexts/publishing/blog-service/domain/entities"
)

// BlogRepository is the store port for blog rows. Update and Delete return
// the affected row; a zero-row outcome surfaces as ErrBlogNotFound.
type BlogRepository interface {
	CreatePost(ctx context.Context, post entities.BlogPost) (entities.BlogPost, error)
	ListPosts(ctx context.Context) ([]entities.BlogPost, error)
	UpdatePost(ctx context.Context, blogID int64, title string, body string) (entities.BlogPost, error)
	DeletePost(ctx context.Context, blogID int64) (entities.BlogPost, error)
}
