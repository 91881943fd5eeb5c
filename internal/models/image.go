package models

import "time"

// ImageAsset is one gallery image: a stored upload file plus its metadata row.
// Path is the stored file name inside the uploads directory.
type ImageAsset struct {
	ID          int64     `json:"id"`
	Path        string    `json:"path"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"-"`
}
