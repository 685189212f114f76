package catalog

import "strings"

// Resources holds the static links and channel references rendered at the
// bottom of the checklist. Channel references use the platform's inline
// channel syntax; links use the platform's <url|label> syntax.
type Resources struct {
	HandbookURL          string
	BrandCenterURL       string
	PDRecordingsURL      string
	StaffDirectoryURL    string
	AllTeamChannel       string
	AnnouncementsChannel string
	AdminEmail           string
}

// DefaultResources returns the compiled-in resources map.
func DefaultResources() Resources {
	return Resources{
		HandbookURL:          "https://drive.example.org/onboarding/chapter-handbook",
		BrandCenterURL:       "https://drive.example.org/onboarding/brand-center",
		PDRecordingsURL:      "https://drive.example.org/onboarding/pd-recordings",
		StaffDirectoryURL:    "https://drive.example.org/onboarding/staff-directory",
		AllTeamChannel:       "<#all-team>",
		AnnouncementsChannel: "<#announcements>",
		AdminEmail:           "admin@example.org",
	}
}

// Line joins the channel references and named links with the given separator.
func (r Resources) Line(sep string) string {
	refs := []string{
		r.AllTeamChannel,
		r.AnnouncementsChannel,
		"<" + r.HandbookURL + "|Handbook>",
		"<" + r.BrandCenterURL + "|Brand Center>",
		"<" + r.PDRecordingsURL + "|PD Recordings>",
		"<" + r.StaffDirectoryURL + "|Staff Directory>",
	}
	return strings.Join(refs, sep)
}
