package domain

import "time"

// TeamMember is a lab member profile. Slug uniqueness mirrors Project.
type TeamMember struct {
	ID          string
	Slug        string
	Name        string
	Role        string
	Bio         string
	PhotoURL    string
	ResumeURL   string
	Email       string
	LinkedInURL string
	GitHubURL   string
	CreatedAt   time.Time

	Skills       []string
	Education    []Education
	Publications []Publication
}

// Education is a degree entry on a member profile.
type Education struct {
	Degree      string
	Institution string
	Year        string
}

// Publication is a paper entry on a member profile.
type Publication struct {
	Title string
	Venue string
}

// MemberProject annotates the many-to-many edge between a team member and a
// project with a free-text contribution description.
type MemberProject struct {
	ID           string
	TeamMemberID string
	ProjectID    string
	Contribution string
}

// MemberContribution pairs a project with the member's contribution note,
// resolved from the member-project association.
type MemberContribution struct {
	Project      Project
	Contribution string
}
