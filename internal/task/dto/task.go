package dto

// CreateTaskRequest carries the fields a caller may set on creation.
// The owner is always the authenticated caller, never part of the body.
type CreateTaskRequest struct {
	Title string `json:"title" binding:"required"`
}

type UpdateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	IsCompleted bool   `json:"isCompleted"`
}
