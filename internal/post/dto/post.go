package dto

type CreatePostRequest struct {
	Content  string `json:"content" binding:"required"`
	Username string `json:"username" binding:"required"`
}

type UpdatePostRequest struct {
	Content string `json:"content" binding:"required"`
}

type CreateCommentRequest struct {
	Content  string  `json:"content" binding:"required"`
	ParentID *string `json:"parentId"`
	Username string  `json:"username" binding:"required"`
}
