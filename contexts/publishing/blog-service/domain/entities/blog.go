package entities

// BlogPost is a published entry. UserID records the admin who created it,
// but edits and deletes are role-gated only: any admin may touch any post.
type BlogPost struct {
	BlogID int64  `json:"blog_id"`
	UserID int64  `json:"user_id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}
