package model

import "time"

// Photo is metadata for an uploaded food image.
type Photo struct {
	ID          string
	UserID      string
	FoodEntryID *string
	StorageURL  string
	LocalPath   *string
	FileSize    int64
	MimeType    string
	CreatedAt   time.Time
}
