package notification

import documentmodel "github.com/adisakb/e-sarabun/internal/core/datamodel/document"

// Item is one audit trail entry, a denormalized snapshot of the document
// that triggered it. CreatedAt is a formatted Thai-locale timestamp string
// captured at creation time; it is not re-derivable from the other fields.
type Item struct {
	ID        string                `json:"id"`
	CreatedAt string                `json:"createdAt"`
	Subject   string                `json:"subject"`
	From      string                `json:"from"`
	To        string                `json:"to"`
	Type      documentmodel.DocType `json:"type"`
	Owner     string                `json:"owner"`
}
