package scheduling

import (
	"context"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/task"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Suggest is a pure query: one ranked page for the constraint.
	Suggest(ctx context.Context, sc model.Scope, input SuggestInput) (SuggestOutput, error)
	// ParseText previews what CreateFromText would do. Nothing is written.
	ParseText(ctx context.Context, sc model.Scope, input ParseTextInput) (ParseOutput, error)
	CreateFromText(ctx context.Context, sc model.Scope, input ParseTextInput) (ParseOutput, error)
	// Resolve searches under a strategy the user picked, or pages through a
	// constraint it returned earlier.
	Resolve(ctx context.Context, sc model.Scope, input ResolveInput) (ResolveOutput, error)
	CreateFromSuggestion(ctx context.Context, sc model.Scope, input task.CreateFromSuggestionInput) (CreateFromSuggestionOutput, error)
}
