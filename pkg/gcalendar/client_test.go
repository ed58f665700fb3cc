package gcalendar_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-scheduler/pkg/gcalendar"
)

const installedCreds = `{
	"installed": {
		"client_id": "scheduler.apps.googleusercontent.com",
		"project_id": "smart-task-scheduler",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "secret",
		"redirect_uris": ["http://localhost"]
	}
}`

// hostRewriter sends every API call to the local test server.
type hostRewriter struct {
	next http.RoundTripper
	host string
}

func (t *hostRewriter) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.host
	return t.next.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	hc := ts.Client()
	hc.Transport = &hostRewriter{next: hc.Transport, host: strings.TrimPrefix(ts.URL, "http://")}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), hc)
	require.NoError(t, err)
	return client
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewClient(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	creds := writeFile(t, dir, "credentials.json", installedCreds)

	t.Run("installed app with token", func(t *testing.T) {
		token := writeFile(t, dir, "token.json", `{"access_token":"dummy","token_type":"Bearer","expiry":"2030-01-01T00:00:00Z"}`)
		_, err := gcalendar.NewClient(ctx, gcalendar.Config{CredentialsPath: creds, TokenPath: token})
		require.NoError(t, err)
	})

	t.Run("installed app without token", func(t *testing.T) {
		_, err := gcalendar.NewClient(ctx, gcalendar.Config{
			CredentialsPath: creds,
			TokenPath:       filepath.Join(dir, "missing.json"),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing.json")
	})

	t.Run("corrupt token", func(t *testing.T) {
		token := writeFile(t, dir, "corrupt.json", `{"access_token":`)
		_, err := gcalendar.NewClient(ctx, gcalendar.Config{CredentialsPath: creds, TokenPath: token})
		require.Error(t, err)
	})

	t.Run("missing credentials file", func(t *testing.T) {
		_, err := gcalendar.NewClient(ctx, gcalendar.Config{CredentialsPath: filepath.Join(dir, "nope.json")})
		require.Error(t, err)
	})

	t.Run("unreadable credentials", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(`not json`))
		require.Error(t, err)
	})
}

func TestListEvents(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	var calls int

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/calendar/v3/calendars/broken/events":
			w.WriteHeader(http.StatusInternalServerError)
			return
		case "/calendar/v3/calendars/work@example.com/events":
		default:
			w.WriteHeader(http.StatusNotFound)
			return
		}

		calls++
		q := r.URL.Query()
		assert.Equal(t, "true", q.Get("singleEvents"))
		assert.Equal(t, "startTime", q.Get("orderBy"))

		w.Header().Set("Content-Type", "application/json")
		if q.Get("pageToken") == "" {
			io.WriteString(w, `{
				"nextPageToken": "p2",
				"items": [
					{"id": "standup", "summary": "Standup",
					 "start": {"dateTime": "2025-07-23T10:00:00+07:00"},
					 "end": {"dateTime": "2025-07-23T10:30:00+07:00"}},
					{"id": "gone", "status": "cancelled",
					 "start": {"dateTime": "2025-07-23T12:00:00+07:00"},
					 "end": {"dateTime": "2025-07-23T13:00:00+07:00"}}
				]
			}`)
			return
		}
		io.WriteString(w, `{
			"items": [
				{"id": "holiday", "summary": "Holiday", "transparency": "transparent",
				 "start": {"date": "2025-07-24"}, "end": {"date": "2025-07-25"}}
			]
		}`)
	})

	events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		CalendarID: "work@example.com",
		TimeMin:    time.Date(2025, 7, 23, 0, 0, 0, 0, loc),
		TimeMax:    time.Date(2025, 7, 26, 0, 0, 0, 0, loc),
		Location:   loc,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, events, 2)

	assert.Equal(t, "standup", events[0].ID)
	assert.True(t, events[0].StartTime.Equal(time.Date(2025, 7, 23, 10, 0, 0, 0, loc)))
	assert.Equal(t, 30*time.Minute, events[0].EndTime.Sub(events[0].StartTime))
	assert.False(t, events[0].AllDay)

	assert.Equal(t, "holiday", events[1].ID)
	assert.True(t, events[1].AllDay)
	assert.True(t, events[1].Transparent)
	assert.True(t, events[1].StartTime.Equal(time.Date(2025, 7, 24, 0, 0, 0, 0, loc)))

	_, err = client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		CalendarID: "broken",
		TimeMin:    time.Now(),
		TimeMax:    time.Now().Add(24 * time.Hour),
	})
	require.Error(t, err)
}

func TestCreateEvent(t *testing.T) {
	start := time.Date(2025, 7, 21, 15, 0, 0, 0, time.UTC)
	end := start.Add(45 * time.Minute)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/calendar/v3/calendars/primary/events" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		var body struct {
			Summary string `json:"summary"`
			Start   struct {
				DateTime string `json:"dateTime"`
				TimeZone string `json:"timeZone"`
			} `json:"start"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Review PR", body.Summary)
		assert.Equal(t, "2025-07-21T15:00:00Z", body.Start.DateTime)
		assert.Equal(t, "UTC", body.Start.TimeZone)

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id": "evt-1", "summary": "Review PR", "htmlLink": "https://calendar.google.com/evt-1"}`)
	})

	ev, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "Review PR",
		StartTime: start,
		EndTime:   end,
		Timezone:  "UTC",
	})
	require.NoError(t, err)
	assert.Equal(t, "evt-1", ev.ID)
	assert.Equal(t, "https://calendar.google.com/evt-1", ev.HtmlLink)
	assert.True(t, ev.StartTime.Equal(start))
	assert.True(t, ev.EndTime.Equal(end))

	_, err = client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{CalendarID: "other"})
	require.Error(t, err)
}

func TestDeleteEvent(t *testing.T) {
	var deleted string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if strings.HasSuffix(r.URL.Path, "/missing") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		deleted = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteEvent(context.Background(), "", "evt-1"))
	assert.Equal(t, "/calendar/v3/calendars/primary/events/evt-1", deleted)

	require.Error(t, client.DeleteEvent(context.Background(), "primary", "missing"))
}
