package gcalendar

import "time"

const (
	defaultTokenPath = "token.json"
	dateLayout       = "2006-01-02"
)

// Config locates the credentials used by NewClient.
type Config struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Ho_Chi_Minh"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	AllDay      bool
	// Transparent events are shown as "free" and do not block time.
	Transparent bool
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
	// Location anchors all-day events; defaults to UTC.
	Location *time.Location
}
