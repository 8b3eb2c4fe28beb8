package analytics

import (
	"sort"

	documentmodel "github.com/adisakb/e-sarabun/internal/core/datamodel/document"
)

// Severity labels for the backlog narrative. Thresholds are strict: a rate
// of exactly 0.4 is not high and exactly 0.2 is not moderate.
const (
	SeverityHigh     = "high"
	SeverityModerate = "moderate"
	SeverityLow      = "low"
)

// Bucket is one time slot in a chart series, counted per registry book.
type Bucket struct {
	Label  string `json:"label"`
	Inbox  int    `json:"inbox"`
	Outbox int    `json:"outbox"`
}

type TimeSeries struct {
	Daily   []Bucket `json:"daily"`
	Monthly []Bucket `json:"monthly"`
	Yearly  []Bucket `json:"yearly"`
}

type Summary struct {
	Total          int `json:"total"`
	InboxCount     int `json:"inboxCount"`
	OutboxCount    int `json:"outboxCount"`
	PendingCount   int `json:"pendingCount"`
	InProcessCount int `json:"inProcessCount"`
	CompletedCount int `json:"completedCount"`
	ReturnedCount  int `json:"returnedCount"`
}

type Insights struct {
	TotalDocuments  int     `json:"totalDocuments"`
	DistinctDays    int     `json:"distinctDays"`
	AveragePerDay   float64 `json:"averagePerDay"`
	BacklogRate     float64 `json:"backlogRate"`
	BacklogSeverity string  `json:"backlogSeverity"`
	TopCategory     string  `json:"topCategory,omitempty"`
	TopOwner        string  `json:"topOwner,omitempty"`
}

// Summarize tallies the whole collection by type and status in one pass.
func Summarize(docs []documentmodel.Document) Summary {
	var s Summary
	s.Total = len(docs)
	for _, d := range docs {
		switch d.Type {
		case documentmodel.TypeInbox:
			s.InboxCount++
		case documentmodel.TypeOutbox:
			s.OutboxCount++
		}
		switch d.Status {
		case documentmodel.StatusPending:
			s.PendingCount++
		case documentmodel.StatusInProcess:
			s.InProcessCount++
		case documentmodel.StatusCompleted:
			s.CompletedCount++
		case documentmodel.StatusReturned:
			s.ReturnedCount++
		}
	}
	return s
}

// BuildTimeSeries buckets documents by day, month and year. Bucket keys are
// substrings of the ISO date (full string, first 7, first 4), created lazily
// on first encounter; slots with no documents are never emitted. Label order
// is lexicographic, which is chronological for these key formats.
func BuildTimeSeries(docs []documentmodel.Document) TimeSeries {
	daily := map[string]*Bucket{}
	monthly := map[string]*Bucket{}
	yearly := map[string]*Bucket{}

	for _, d := range docs {
		bump(daily, dayKey(d.Date), d.Type)
		bump(monthly, monthKey(d.Date), d.Type)
		bump(yearly, yearKey(d.Date), d.Type)
	}

	return TimeSeries{
		Daily:   sorted(daily),
		Monthly: sorted(monthly),
		Yearly:  sorted(yearly),
	}
}

func dayKey(date string) string {
	return date
}

func monthKey(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

func yearKey(date string) string {
	if len(date) < 4 {
		return date
	}
	return date[:4]
}

func bump(buckets map[string]*Bucket, key string, t documentmodel.DocType) {
	b, ok := buckets[key]
	if !ok {
		b = &Bucket{Label: key}
		buckets[key] = b
	}
	switch t {
	case documentmodel.TypeInbox:
		b.Inbox++
	case documentmodel.TypeOutbox:
		b.Outbox++
	}
}

func sorted(buckets map[string]*Bucket) []Bucket {
	out := make([]Bucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// ComputeInsights derives the narrative numbers from the tallies. All
// divisions are guarded: an empty collection yields zero rates, no top
// category and no top owner.
func ComputeInsights(docs []documentmodel.Document) Insights {
	summary := Summarize(docs)

	distinctDays := map[string]struct{}{}
	for _, d := range docs {
		distinctDays[d.Date] = struct{}{}
	}
	dayCount := len(distinctDays)

	divisor := dayCount
	if divisor < 1 {
		divisor = 1
	}

	backlogRate := 0.0
	if summary.Total > 0 {
		backlogRate = float64(summary.PendingCount) / float64(summary.Total)
	}

	return Insights{
		TotalDocuments:  summary.Total,
		DistinctDays:    dayCount,
		AveragePerDay:   float64(summary.Total) / float64(divisor),
		BacklogRate:     backlogRate,
		BacklogSeverity: ClassifySeverity(backlogRate),
		TopCategory:     topValue(docs, func(d documentmodel.Document) string { return d.Category }),
		TopOwner:        topValue(docs, func(d documentmodel.Document) string { return d.Owner }),
	}
}

// ClassifySeverity maps a backlog rate to its narrative label. Both
// comparisons are strict, so the boundary values 0.4 and 0.2 fall into the
// lower class.
func ClassifySeverity(rate float64) string {
	switch {
	case rate > 0.4:
		return SeverityHigh
	case rate > 0.2:
		return SeverityModerate
	default:
		return SeverityLow
	}
}

// topValue returns the most frequent non-empty value. Ties go to the value
// that entered the tally first (document order), which keeps the result
// stable across identical inputs.
func topValue(docs []documentmodel.Document, field func(documentmodel.Document) string) string {
	counts := map[string]int{}
	var order []string

	for _, d := range docs {
		v := field(d)
		if v == "" {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	best := ""
	bestCount := 0
	for _, v := range order {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}
