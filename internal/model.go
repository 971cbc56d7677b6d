package internal

// Page identifies a screen of the client shell.
type Page string

const (
	PageLanding   Page = "landing"
	PageAuth      Page = "auth"
	PageDashboard Page = "dashboard"
	PageHistory   Page = "history"
	PageChat      Page = "chat"
	PageToolkit   Page = "toolkit"
	PageProfile   Page = "profile"
)

// User is the identity record, keyed by email. Bio and Avatar are optional.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Bio    string `json:"bio,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// DefaultBio is assigned when a user record is created on first login.
const DefaultBio = "Finding peace one day at a time."

// LifestyleStats carries the optional per-entry lifestyle metrics.
// All values are non-negative.
type LifestyleStats struct {
	SleepHours     float64 `json:"sleepHours"`
	WaterOunces    float64 `json:"waterOunces"`
	MindfulMinutes float64 `json:"mindfulMinutes"`
	Steps          int     `json:"steps"`
}

// MoodEntry is one journaled emotional moment. Date is the ISO-8601 string
// submitted by the client; it is kept as a string so an unparseable value
// degrades to the Unknown time bucket instead of failing decode. Entries are
// immutable after creation.
type MoodEntry struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Mood      string          `json:"mood"`
	Note      string          `json:"note"`
	Icon      string          `json:"icon,omitempty"`
	Tags      []string        `json:"tags"`
	Lifestyle *LifestyleStats `json:"lifestyle,omitempty"`
	UserEmail string          `json:"userEmail,omitempty"`
}

// Preset mood labels. Custom labels are tolerated everywhere; these are the
// ones the insight heuristics know about.
const (
	MoodHappy    = "Happy"
	MoodSad      = "Sad"
	MoodStressed = "Stressed"
	MoodTired    = "Tired"
	MoodNeutral  = "Neutral"
)

// NegativeMoods are the labels the insight heuristics treat as concerning.
var NegativeMoods = map[string]bool{
	MoodSad:      true,
	MoodStressed: true,
}

// KnownTags maps context tags to their display icons. Unknown tags fall back
// to DefaultTagIcon.
var KnownTags = map[string]string{
	"#Work":   "fa-briefcase",
	"#Sleep":  "fa-moon",
	"#Social": "fa-users",
	"#Health": "fa-heart-pulse",
	"#Family": "fa-house-chimney-user",
}

const DefaultTagIcon = "fa-tag"

// TagIcon returns the icon for a tag, tolerating labels it has never seen.
func TagIcon(tag string) string {
	if icon, ok := KnownTags[tag]; ok {
		return icon
	}
	return DefaultTagIcon
}

// MoodColors maps the themed label variant to its palette. Kept for
// rendering tolerance; the preset vocabulary above is the one insights use.
var MoodColors = map[string]string{
	"Vibrant": "#D4A017",
	"Calm":    "#6A9382",
	"Heavy":   "#14211E",
	"Frayed":  "#C97272",
	"Steady":  "#8B9D98",
}
