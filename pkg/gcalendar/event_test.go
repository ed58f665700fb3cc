package gcalendar

import (
	"testing"
	"time"

	"google.golang.org/api/calendar/v3"
)

func TestToEvent(t *testing.T) {
	hcm := time.FixedZone("ICT", 7*3600)

	tests := []struct {
		name        string
		item        *calendar.Event
		ok          bool
		start       time.Time
		end         time.Time
		allDay      bool
		transparent bool
	}{
		{
			name: "timed",
			item: &calendar.Event{
				Id:    "a",
				Start: &calendar.EventDateTime{DateTime: "2025-07-23T10:00:00+07:00"},
				End:   &calendar.EventDateTime{DateTime: "2025-07-23T11:00:00+07:00"},
			},
			ok:    true,
			start: time.Date(2025, 7, 23, 3, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 7, 23, 4, 0, 0, 0, time.UTC),
		},
		{
			name: "all day",
			item: &calendar.Event{
				Id:           "b",
				Start:        &calendar.EventDateTime{Date: "2025-07-24"},
				End:          &calendar.EventDateTime{Date: "2025-07-25"},
				Transparency: "transparent",
			},
			ok:          true,
			start:       time.Date(2025, 7, 24, 0, 0, 0, 0, hcm),
			end:         time.Date(2025, 7, 25, 0, 0, 0, 0, hcm),
			allDay:      true,
			transparent: true,
		},
		{
			name: "missing end",
			item: &calendar.Event{Id: "c", Start: &calendar.EventDateTime{Date: "2025-07-24"}},
		},
		{
			name: "bad datetime",
			item: &calendar.Event{
				Id:    "d",
				Start: &calendar.EventDateTime{DateTime: "soon"},
				End:   &calendar.EventDateTime{DateTime: "later"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := toEvent(tt.item, hcm)
			if ok != tt.ok {
				t.Fatalf("toEvent() ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if !ev.StartTime.Equal(tt.start) || !ev.EndTime.Equal(tt.end) {
				t.Errorf("toEvent() = [%v, %v), want [%v, %v)", ev.StartTime, ev.EndTime, tt.start, tt.end)
			}
			if ev.AllDay != tt.allDay || ev.Transparent != tt.transparent {
				t.Errorf("toEvent() allDay=%v transparent=%v", ev.AllDay, ev.Transparent)
			}
		})
	}
}
