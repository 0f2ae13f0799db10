package request

import "strings"

// Filter returns the subsequence of items matching params, preserving order.
// The status clause is an exact match; the search clause is a substring test
// over id, category, description and priority (any may match). Both clauses
// must hold; an empty clause always holds. The input slice is never mutated.
func Filter(items []Request, params *FindParams) []Request {
	status := ""
	search := ""
	if params != nil {
		status = strings.TrimSpace(params.Status)
		search = strings.TrimSpace(params.Search)
	}

	out := make([]Request, 0, len(items))
	for _, item := range items {
		if status != "" && string(item.status) != status {
			continue
		}
		if search != "" && !item.matchesSearch(search) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (r Request) matchesSearch(query string) bool {
	return strings.Contains(r.id, query) ||
		strings.Contains(r.category, query) ||
		strings.Contains(r.description, query) ||
		strings.Contains(string(r.priority), query)
}
