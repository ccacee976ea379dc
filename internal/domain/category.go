package domain

import "fmt"

// Category classifies a project. The enumeration is closed: adding a value
// means updating every exhaustive switch in this package and in the web layer.
type Category string

const (
	CategoryVLSI       Category = "vlsi"
	CategoryAIRobotics Category = "ai-robotics"
)

// Categories lists all valid categories in display order.
func Categories() []Category {
	return []Category{CategoryVLSI, CategoryAIRobotics}
}

// ParseCategory validates a raw category string.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryVLSI:
		return CategoryVLSI, nil
	case CategoryAIRobotics:
		return CategoryAIRobotics, nil
	default:
		return "", fmt.Errorf("unknown category %q", s)
	}
}

// Label returns the human-readable name for the category.
func (c Category) Label() string {
	switch c {
	case CategoryVLSI:
		return "VLSI"
	case CategoryAIRobotics:
		return "AI & Robotics"
	default:
		return string(c)
	}
}

// Status is the publication state of a project.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// ParseStatus validates a raw status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusDraft:
		return StatusDraft, nil
	case StatusPublished:
		return StatusPublished, nil
	default:
		return "", fmt.Errorf("unknown status %q", s)
	}
}

// Label returns the human-readable name for the status.
func (s Status) Label() string {
	switch s {
	case StatusDraft:
		return "Draft"
	case StatusPublished:
		return "Published"
	default:
		return string(s)
	}
}

// MediaType distinguishes images from videos, both for project galleries
// and for media library assets.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// ParseMediaType validates a raw media type string.
func ParseMediaType(s string) (MediaType, error) {
	switch MediaType(s) {
	case MediaImage:
		return MediaImage, nil
	case MediaVideo:
		return MediaVideo, nil
	default:
		return "", fmt.Errorf("unknown media type %q", s)
	}
}
