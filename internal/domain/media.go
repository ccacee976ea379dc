package domain

import "time"

// MediaAsset is an item in the admin media library. Distinct from
// ProjectMedia: assets exist independently and projects reference them by URL.
type MediaAsset struct {
	ID         string
	Name       string
	Type       MediaType
	URL        string
	SizeBytes  int64
	UploadedAt time.Time
}
