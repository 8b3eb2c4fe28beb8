package document

import (
	"strings"

	documentmodel "github.com/adisakb/e-sarabun/internal/core/datamodel/document"
)

// Filter derives the view for one registry book. Documents are partitioned
// by type first, then the remaining predicates compose by AND:
//
//   - a non-empty search keyword (trimmed, case-folded) must be a substring
//     of registerNo, docNo, subject or from (OR across the four fields)
//   - status and priority must match exactly unless set to the ALL sentinel
//
// The relative order of the input is preserved, the input is never mutated,
// and an empty result is a valid empty slice.
func Filter(docs []documentmodel.Document, params FilterParams) []documentmodel.Document {
	keyword := strings.ToLower(strings.TrimSpace(params.Search))

	out := make([]documentmodel.Document, 0, len(docs))
	for _, d := range docs {
		if d.Type != params.Type {
			continue
		}
		if keyword != "" && !matchesKeyword(d, keyword) {
			continue
		}
		if params.Status != "" && params.Status != FilterAll && string(d.Status) != params.Status {
			continue
		}
		if params.Priority != "" && params.Priority != FilterAll && string(d.Priority) != params.Priority {
			continue
		}
		out = append(out, d)
	}
	return out
}

func matchesKeyword(d documentmodel.Document, keyword string) bool {
	return strings.Contains(strings.ToLower(d.RegisterNo), keyword) ||
		strings.Contains(strings.ToLower(d.DocNo), keyword) ||
		strings.Contains(strings.ToLower(d.Subject), keyword) ||
		strings.Contains(strings.ToLower(d.From), keyword)
}
