package resolver

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-scheduler/internal/model"
)

func TestValidate(t *testing.T) {
	day := time.Date(2025, 7, 23, 0, 0, 0, 0, time.UTC)
	later := day.Add(time.Hour)

	tests := []struct {
		name     string
		in       model.SearchConstraint
		wantKind Kind
		wantCode string
		field    string
	}{
		{name: "defaults", in: model.SearchConstraint{}},
		{name: "unknown strategy", in: model.SearchConstraint{Strategy: "fortnight"}, wantKind: KindValidation, field: "strategy"},
		{name: "unknown task type", in: model.SearchConstraint{TaskType: "Party"}, wantKind: KindValidation, field: "taskType"},
		{name: "negative duration", in: model.SearchConstraint{DurationMinutes: -5}, wantKind: KindValidation, field: "durationMinutes"},
		{name: "duration over a day", in: model.SearchConstraint{DurationMinutes: 1441}, wantKind: KindValidation, field: "durationMinutes"},
		{name: "negative page", in: model.SearchConstraint{Page: -1}, wantKind: KindValidation, field: "page"},
		{name: "huge page", in: model.SearchConstraint{Page: DefaultMaxPage + 1}, wantKind: KindValidation, field: "page"},
		{name: "page size too big", in: model.SearchConstraint{PageSize: 51}, wantKind: KindValidation, field: "pageSize"},
		{name: "inverted window", in: model.SearchConstraint{WindowStart: &later, WindowEnd: &day}, wantKind: KindValidation, field: "windowEnd"},
		{name: "day without lock on page 1", in: model.SearchConstraint{Strategy: model.StrategyDay}, wantKind: KindValidation, field: "lockedDate"},
		{
			name:     "day without lock on page 2",
			in:       model.SearchConstraint{Strategy: model.StrategyDay, Page: 2},
			wantKind: KindConstraintViolation,
			wantCode: CodePaginationConstraintViolation,
			field:    "lockedDate",
		},
		{name: "day with lock on page 2", in: model.SearchConstraint{Strategy: model.StrategyDay, Page: 2, LockedDate: &day}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.in, DefaultLimits())
			if tt.wantKind == "" {
				require.NoError(t, err)
				assert.GreaterOrEqual(t, got.Page, 1)
				assert.Equal(t, DefaultPageSize, got.PageSize)
				assert.NotEmpty(t, got.Strategy)
				return
			}

			var ce *ConstraintError
			require.True(t, errors.As(err, &ce), "got %v", err)
			assert.Equal(t, tt.wantKind, ce.Kind)
			assert.Equal(t, tt.field, ce.Field)
			assert.NotEmpty(t, ce.Expected)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, ce.Code)
			}
		})
	}
}

func TestValidateDefaultsStrategyToAuto(t *testing.T) {
	got, err := Validate(model.SearchConstraint{}, Limits{})
	require.NoError(t, err)
	assert.Equal(t, model.StrategyAuto, got.Strategy)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 3, got.PageSize)
}
