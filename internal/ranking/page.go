package ranking

import "smart-task-scheduler/internal/model"

// Page is one slice of a ranked result.
type Page struct {
	Suggestions  []model.Suggestion
	Page         int
	PageSize     int
	Total        int
	HasMorePages bool
}

// Paginate cuts page (1-based) out of ranked. A page past the end is empty,
// never an error. A non-positive pageSize returns everything on page 1.
func Paginate(ranked []model.Suggestion, page, pageSize int) Page {
	if page < 1 {
		page = 1
	}
	total := len(ranked)
	if pageSize <= 0 {
		out := Page{Suggestions: []model.Suggestion{}, Page: page, PageSize: total, Total: total}
		if page == 1 {
			out.Suggestions = append(out.Suggestions, ranked...)
		}
		return out
	}

	p := Page{Suggestions: []model.Suggestion{}, Page: page, PageSize: pageSize, Total: total}
	start := (page - 1) * pageSize
	if start >= total {
		return p
	}
	end := min(start+pageSize, total)
	p.Suggestions = append(p.Suggestions, ranked[start:end]...)
	p.HasMorePages = end < total
	return p
}
