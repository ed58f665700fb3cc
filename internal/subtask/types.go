package subtask

// --- UseCase Inputs ---

type AddInput struct {
	TaskID      string
	Title       string
	Description string
}

// ItemInput addresses one subtask of one task.
type ItemInput struct {
	TaskID string
	ID     string
}
