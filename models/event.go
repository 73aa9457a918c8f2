package models

import "time"

// Visibility controls which other events an event is compared against
// during overlap detection.
const (
	VisibilityGroup    = "group"
	VisibilitySubgroup = "subgroup"
	VisibilityPersonal = "personal"
)

// Date and clock layouts used everywhere in the API.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

type Event struct {
	ID          string    `bson:"_id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description"`
	StartDate   string    `bson:"start_date" json:"start_date"`
	EndDate     string    `bson:"end_date" json:"end_date"`
	Time        string    `bson:"time,omitempty" json:"time"` // empty means all-day
	Location    string    `bson:"location,omitempty" json:"location"`
	GroupID     string    `bson:"group_id,omitempty" json:"group_id"`
	SubgroupID  string    `bson:"subgroup_id,omitempty" json:"subgroup_id"`
	CreatedBy   string    `bson:"created_by" json:"created_by"`
	Visibility  string    `bson:"visibility" json:"visibility"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// CreateEventInput is a candidate event submitted through the creation
// protocol, either directly over HTTP or by an ingestion adapter.
type CreateEventInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"` // defaults to StartDate
	Time        string `json:"time"`
	Location    string `json:"location"`
	GroupID     string `json:"group_id"`
	SubgroupID  string `json:"subgroup_id"`
	CreatedBy   string `json:"created_by"`
	Visibility  string `json:"visibility"` // defaults to "group"
	Force       bool   `json:"force"`      // bypass overlap rejection only
}

// UpdateEventInput carries a partial overwrite: nil fields are left
// untouched. Identity fields (id, created_by) cannot be changed.
type UpdateEventInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	GroupID     *string `json:"group_id"`
	SubgroupID  *string `json:"subgroup_id"`
	Visibility  *string `json:"visibility"`
}

// ParseDate parses a canonical YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseClock parses a canonical 24-hour HH:MM clock value.
func ParseClock(s string) (time.Time, error) {
	return time.Parse(ClockLayout, s)
}
