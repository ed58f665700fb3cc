package http

import (
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/subtask"
)

// --- Request DTOs ---

type addReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r addReq) toInput(taskID string) subtask.AddInput {
	return subtask.AddInput{TaskID: taskID, Title: r.Title, Description: r.Description}
}

// --- Response DTOs ---

type subtaskResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	IsDone      bool   `json:"isDone"`
	Description string `json:"description"`
}

func newSubtaskResp(st model.Subtask) subtaskResp {
	return subtaskResp{ID: st.ID, Title: st.Title, IsDone: st.Done, Description: st.Description}
}

type listResp struct {
	Subtasks []subtaskResp `json:"subtasks"`
}

func newListResp(subtasks []model.Subtask) listResp {
	resp := listResp{Subtasks: make([]subtaskResp, len(subtasks))}
	for i, st := range subtasks {
		resp.Subtasks[i] = newSubtaskResp(st)
	}
	return resp
}
