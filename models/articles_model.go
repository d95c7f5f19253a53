package models

import (
	"time"

	"github.com/google/uuid"
)

// Article is the persisted entity. Date is assigned by the server on
// creation and is the sole sort key for listings (descending).
type Article struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
}
