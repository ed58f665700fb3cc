package repository

type CreateSubtaskOptions struct {
	ID          string
	TaskID      string
	UserID      string
	Title       string
	Description string
}

type ListSubtasksOptions struct {
	TaskID string
	UserID string
}

// GetSubtaskOptions addresses one subtask of one task.
type GetSubtaskOptions struct {
	ID     string
	TaskID string
	UserID string
}
