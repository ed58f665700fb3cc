package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-scheduler/internal/middleware"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/subtask"
	"smart-task-scheduler/internal/task"
	"smart-task-scheduler/pkg/log"
	"smart-task-scheduler/pkg/response"
)

type fakeUseCase struct {
	addIn  subtask.AddInput
	itemIn subtask.ItemInput
	list   []model.Subtask
	err    error
}

func (f *fakeUseCase) Add(ctx context.Context, sc model.Scope, in subtask.AddInput) (model.Subtask, error) {
	f.addIn = in
	if f.err != nil {
		return model.Subtask{}, f.err
	}
	return model.Subtask{ID: "s1", TaskID: in.TaskID, Title: in.Title, Description: in.Description}, nil
}

func (f *fakeUseCase) List(ctx context.Context, sc model.Scope, taskID string) ([]model.Subtask, error) {
	return f.list, f.err
}

func (f *fakeUseCase) Toggle(ctx context.Context, sc model.Scope, in subtask.ItemInput) (model.Subtask, error) {
	f.itemIn = in
	if f.err != nil {
		return model.Subtask{}, f.err
	}
	return model.Subtask{ID: in.ID, TaskID: in.TaskID, Title: "Outline", Done: true}, nil
}

func (f *fakeUseCase) Delete(ctx context.Context, sc model.Scope, in subtask.ItemInput) error {
	f.itemIn = in
	return f.err
}

func do(uc subtask.UseCase, method, path, body string) (*httptest.ResponseRecorder, response.Resp) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc), middleware.New(log.NewNop(), middleware.Config{}, nil))

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(middleware.HeaderUserID, "u1")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Resp
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		body     string
		expCode  int
		expField string
	}{
		{name: "created", body: `{"title":"Outline","description":"one page"}`, expCode: http.StatusCreated},
		{name: "bad body", body: `{"title":7}`, expCode: http.StatusBadRequest},
		{name: "blank title", err: subtask.ErrTitleRequired, body: `{"title":""}`, expCode: http.StatusBadRequest, expField: "title"},
		{name: "unknown task", err: task.ErrTaskNotFound, body: `{"title":"x"}`, expCode: http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tc.err}
			w, resp := do(uc, http.MethodPost, "/api/v1/tasks/t1/subtasks", tc.body)

			require.Equal(t, tc.expCode, w.Code)
			if tc.expField != "" {
				assert.Equal(t, tc.expField, resp.Errors.(map[string]any)["field"])
			}
			if tc.expCode == http.StatusCreated {
				assert.Equal(t, "t1", uc.addIn.TaskID)
				data := resp.Data.(map[string]any)
				assert.Equal(t, "Outline", data["title"])
				assert.Equal(t, false, data["isDone"])
				assert.Equal(t, "one page", data["description"])
			}
		})
	}
}

func TestList(t *testing.T) {
	uc := &fakeUseCase{list: []model.Subtask{{ID: "s1", Title: "Outline"}, {ID: "s2", Title: "Rehearse", Done: true}}}
	w, resp := do(uc, http.MethodGet, "/api/v1/tasks/t1/subtasks", "")

	require.Equal(t, http.StatusOK, w.Code)
	items := resp.Data.(map[string]any)["subtasks"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, true, items[1].(map[string]any)["isDone"])

	w, _ = do(&fakeUseCase{list: nil}, http.MethodGet, "/api/v1/tasks/t1/subtasks", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"subtasks":[]`)
}

func TestToggleAndDelete(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		err     error
		expCode int
	}{
		{name: "toggle", method: http.MethodPatch, expCode: http.StatusOK},
		{name: "toggle missing", method: http.MethodPatch, err: subtask.ErrSubtaskNotFound, expCode: http.StatusNotFound},
		{name: "delete", method: http.MethodDelete, expCode: http.StatusOK},
		{name: "delete foreign task", method: http.MethodDelete, err: task.ErrTaskNotFound, expCode: http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tc.err}
			w, _ := do(uc, tc.method, "/api/v1/tasks/t1/subtasks/s9", "")

			assert.Equal(t, tc.expCode, w.Code)
			assert.Equal(t, subtask.ItemInput{TaskID: "t1", ID: "s9"}, uc.itemIn)
		})
	}
}
