package comments

type CreateCommentRequest struct {
	Message string `json:"message" binding:"required"`
	PostID  int64  `json:"postId" binding:"required"`
}

type UpdateCommentRequest struct {
	Message string `json:"message"`
}
