// Command gcal-auth authorizes Google Calendar access once and writes the
// OAuth token the API server reads from google_calendar.token_path.
//
// Usage:
//
//	go run ./cmd/gcal-auth
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"smart-task-scheduler/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}
	credsPath := cfg.GoogleCalendar.CredentialsPath
	if credsPath == "" {
		credsPath = "google-credentials.json"
	}
	tokenPath := cfg.GoogleCalendar.TokenPath

	data, err := os.ReadFile(credsPath)
	if err != nil {
		fmt.Printf("Failed to read credentials file %q: %v\n", credsPath, err)
		os.Exit(1)
	}

	oauthCfg, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		fmt.Printf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.\n", err, credsPath)
		os.Exit(1)
	}

	authURL := oauthCfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("Step 1: open this URL and sign in with the Google account that owns the calendar:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("Step 2: paste the authorization code and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		fmt.Printf("Failed to read authorization code: %v\n", err)
		os.Exit(1)
	}

	tok, err := oauthCfg.Exchange(context.Background(), code)
	if err != nil {
		fmt.Printf("Failed to exchange authorization code: %v\n", err)
		os.Exit(1)
	}

	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		fmt.Printf("Failed to create %s: %v\n", tokenPath, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		fmt.Printf("Failed to write %s: %v\n", tokenPath, err)
		os.Exit(1)
	}

	fmt.Printf("\nToken saved to %s. Set google_calendar.enabled=true and restart the API.\n", tokenPath)
}
