package httpadapter

import (
	"context"
	"log/slog"

	"inkwell/contexts/publishing/blog-service/application"
	"inkwell/contexts/publishing/blog-service/domain/entities"
	httptransport "inkwell/contexts/publishing/blog-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// CreatePostHandler godoc
// @Summary Create a blog post
// @Description Inserts a post owned by the calling admin.
// @Tags publishing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.CreatePostRequest true "Post content"
// @Success 200 {object} httptransport.CreatePostResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /create [post]
func (h Handler) CreatePostHandler(ctx context.Context, userID int64, req httptransport.CreatePostRequest) (httptransport.CreatePostResponse, error) {
	post, err := h.Service.CreatePost(ctx, userID, req.Title, req.Body)
	if err != nil {
		application.ResolveLogger(h.Logger).Error("create post failed",
			"event", "http_create_post_failed",
			"module", "publishing/blog-service",
			"layer", "transport",
			"error", err.Error(),
		)
		return httptransport.CreatePostResponse{}, err
	}
	return httptransport.CreatePostResponse{
		Data: []httptransport.BlogData{mapPost(post)},
	}, nil
}

// ListPostsHandler godoc
// @Summary List all blog posts
// @Tags publishing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httptransport.ReadPostsResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Router /read [get]
func (h Handler) ListPostsHandler(ctx context.Context) (httptransport.ReadPostsResponse, error) {
	posts, err := h.Service.ListPosts(ctx)
	if err != nil {
		return httptransport.ReadPostsResponse{}, err
	}
	resp := httptransport.ReadPostsResponse{Data: make([]httptransport.BlogData, 0, len(posts))}
	for _, post := range posts {
		resp.Data = append(resp.Data, mapPost(post))
	}
	return resp, nil
}

// UpdatePostHandler godoc
// @Summary Update a blog post
// @Tags publishing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param blog_id query int true "Blog id"
// @Param request body httptransport.UpdatePostRequest true "New content"
// @Success 200 {object} httptransport.UpdatePostResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /update [put]
func (h Handler) UpdatePostHandler(ctx context.Context, blogID int64, req httptransport.UpdatePostRequest) (httptransport.UpdatePostResponse, error) {
	post, err := h.Service.UpdatePost(ctx, blogID, req.Title, req.Body)
	if err != nil {
		return httptransport.UpdatePostResponse{}, err
	}
	return httptransport.UpdatePostResponse{
		Message: "Blog updated successfully",
		Updated: []httptransport.BlogData{mapPost(post)},
	}, nil
}

// DeletePostHandler godoc
// @Summary Delete a blog post
// @Tags publishing
// @Produce json
// @Security BearerAuth
// @Param blog_id query int true "Blog id"
// @Success 200 {object} httptransport.DeletePostResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /delete [delete]
func (h Handler) DeletePostHandler(ctx context.Context, blogID int64) (httptransport.DeletePostResponse, error) {
	post, err := h.Service.DeletePost(ctx, blogID)
	if err != nil {
		return httptransport.DeletePostResponse{}, err
	}
	return httptransport.DeletePostResponse{
		Message: "Blog deleted successfully",
		Deleted: []httptransport.BlogData{mapPost(post)},
	}, nil
}

func mapPost(post entities.BlogPost) httptransport.BlogData {
	return httptransport.BlogData{
		BlogID: post.BlogID,
		UserID: post.UserID,
		Title:  post.Title,
		Body:   post.Body,
	}
}
