package documents

import "time"

// Document is a tailored resume owned by a user. JobDescription is fixed at
// creation; Title and Content are editable.
type Document struct {
	ID             string    `json:"id"`
	UserID         string    `json:"-"`
	Title          *string   `json:"title"`
	JobDescription string    `json:"jobDescription"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Summary is the list-view projection of a Document.
type Summary struct {
	ID        string    `json:"id"`
	Title     *string   `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d Document) summary() Summary {
	return Summary{ID: d.ID, Title: d.Title, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt}
}

// Limits on stored fields.
const (
	MaxTitleLen          = 200
	MaxJobDescriptionLen = 50000
	MaxContentLen        = 500000
)
