package datemath

import "time"

// Match is a calendar date found inside free text.
type Match struct {
	Date     time.Time
	Fragment string
}

// Window is a vague date range such as "next week", found inside free text.
// End is exclusive.
type Window struct {
	Start    time.Time
	End      time.Time
	Fragment string
}
