package document

// DocType partitions the registry into two books: the inbound register and
// the outbound register. It is immutable once a document is created.
type DocType string

const (
	TypeInbox  DocType = "INBOX"
	TypeOutbox DocType = "OUTBOX"
)

func (t DocType) Valid() bool {
	return t == TypeInbox || t == TypeOutbox
}

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusInProcess Status = "IN_PROCESS"
	StatusCompleted Status = "COMPLETED"
	StatusReturned  Status = "RETURNED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProcess, StatusCompleted, StatusReturned:
		return true
	}
	return false
}

type Priority string

const (
	PriorityNormal     Priority = "NORMAL"
	PriorityUrgent     Priority = "URGENT"
	PriorityVeryUrgent Priority = "VERY_URGENT"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityNormal, PriorityUrgent, PriorityVeryUrgent:
		return true
	}
	return false
}

type AttachmentType string

const (
	AttachmentPDF   AttachmentType = "PDF"
	AttachmentImage AttachmentType = "IMAGE"
)

// Attachment is owned exclusively by its parent document; it is never
// persisted on its own.
type Attachment struct {
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Type AttachmentType `json:"type"`
	URL  string         `json:"url"`
}

// Document is a registry entry. Category holds the category name as it was
// at creation time; deleting the category later leaves the reference
// dangling on purpose.
type Document struct {
	ID          string       `json:"id"`
	RegisterNo  string       `json:"registerNo"`
	DocNo       string       `json:"docNo"`
	Subject     string       `json:"subject"`
	From        string       `json:"from"`
	To          string       `json:"to"`
	Date        string       `json:"date"` // YYYY-MM-DD
	Type        DocType      `json:"type"`
	Status      Status       `json:"status"`
	Priority    Priority     `json:"priority"`
	Category    string       `json:"category"`
	Owner       string       `json:"owner"`
	Attachments []Attachment `json:"attachments"`
	Tags        []string     `json:"tags"`
}
