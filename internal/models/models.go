package models

import (
	"time"
)

// Lead is one candidate profile extracted from a search result.
// Every field except the key can be missing in the upstream data,
// so they are pointers and map to NULL columns.
type Lead struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Title    *string `json:"title"`
	Company  *string `json:"company"`
	Location *string `json:"location"`
}
