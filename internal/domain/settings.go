package domain

// SiteSetting is a keyed blob of configurable site text, e.g. the hero
// headline or the about-page body.
type SiteSetting struct {
	ID    string
	Key   string
	Value map[string]any
}

// Well-known setting keys.
const (
	SettingSiteInfo = "site_info"
	SettingAbout    = "about"
	SettingContact  = "contact"
)

// Text returns the string stored under field, or the empty string.
func (s *SiteSetting) Text(field string) string {
	if s == nil || s.Value == nil {
		return ""
	}
	v, _ := s.Value[field].(string)
	return v
}
