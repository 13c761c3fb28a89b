package entity

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
)

// Todo is a row of the "todos" collection.
type Todo struct {
	ID          uuid.UUID `json:"id"`                    // Generated by the backend.
	UserID      uuid.UUID `json:"user_id"`               // Owning Identity.
	Title       string    `json:"title"`                 // Never empty.
	Description *string   `json:"description,omitempty"` // Optional free text.
	Completed   bool      `json:"completed"`
	ImageURL    *string   `json:"image_url,omitempty"` // Public URL of the attached image, if any.
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasImage reports whether the todo references a stored image.
func (t *Todo) HasImage() bool {
	return t != nil && t.ImageURL != nil && *t.ImageURL != ""
}

// TodoInsert holds the client-supplied columns of a new todo row.
type TodoInsert struct {
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	ImageURL    *string   `json:"image_url,omitempty"`
}

// TodoPatch holds the columns to change; nil fields are left untouched.
type TodoPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	ClearImage  bool    `json:"-"` // Sets image_url to null; wins over ImageURL.
}

// IsEmpty reports whether the patch changes nothing.
func (p TodoPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil && p.ImageURL == nil && !p.ClearImage
}

// MarshalJSON writes only the columns being changed.
func (p TodoPatch) MarshalJSON() ([]byte, error) {
	columns := make(map[string]any, 4)
	if p.Title != nil {
		columns["title"] = *p.Title
	}
	if p.Description != nil {
		columns["description"] = *p.Description
	}
	if p.Completed != nil {
		columns["completed"] = *p.Completed
	}
	switch {
	case p.ClearImage:
		columns["image_url"] = nil
	case p.ImageURL != nil:
		columns["image_url"] = *p.ImageURL
	}

	return json.Marshal(columns)
}

// ImageUpload is a file offered for attachment to a todo.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}
