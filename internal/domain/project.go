package domain

import "time"

// Project is a portfolio entry. Slug is unique within the collection and is
// the sole lookup key for the public detail page.
type Project struct {
	ID           string
	Slug         string
	Title        string
	Category     Category
	Description  string
	Content      string
	ThumbnailURL string
	Featured     bool
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Timeline and Media are ordered by OrderIndex as authored, never by
	// date. Display order and chronological order may diverge.
	Timeline []TimelineEvent
	Media    []ProjectMedia
}

// Published reports whether the project is visible on the public site.
func (p *Project) Published() bool {
	return p.Status == StatusPublished
}

// TimelineEvent is a milestone owned by exactly one project.
type TimelineEvent struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	Date        time.Time
	OrderIndex  int
}

// ProjectMedia is a gallery item owned by exactly one project.
type ProjectMedia struct {
	ID         string
	ProjectID  string
	Type       MediaType
	URL        string
	Caption    string
	OrderIndex int
}

// ProjectContributor pairs a team member with their contribution note on a
// project, resolved from the member-project association.
type ProjectContributor struct {
	Member       TeamMember
	Contribution string
}
