package posts

type CreatePostRequest struct {
	Message string `json:"message" binding:"required"`
}

type UpdatePostRequest struct {
	Message string `json:"message"`
}
