package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type BlogData struct {
	BlogID int64  `json:"blog_id"`
	UserID int64  `json:"user_id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

type CreatePostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type CreatePostResponse struct {
	Data []BlogData `json:"data"`
}

type ReadPostsResponse struct {
	Data []BlogData `json:"data"`
}

type UpdatePostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type UpdatePostResponse struct {
	Message string     `json:"message"`
	Updated []BlogData `json:"updated"`
}

type DeletePostResponse struct {
	Message string     `json:"message"`
	Deleted []BlogData `json:"deleted"`
}
