// scripts/gcal-verify/main.go
//
// Run this locally to verify that a Google service account credentials
// file is valid for Calendar access before pointing the server at it.
//
// Usage:
//   go run scripts/gcal-verify/main.go [credentials-file]

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", credsPath, err)
	}

	config, err := google.JWTConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is a Service Account credentials file.", err, credsPath)
	}

	ctx := context.Background()
	tok, err := config.TokenSource(ctx).Token()
	if err != nil {
		log.Fatalf("Failed to obtain access token: %v", err)
	}

	fmt.Println("Credentials OK.")
	fmt.Printf("Service account: %s\n", config.Email)
	fmt.Printf("Token expires:   %s\n", tok.Expiry)
	fmt.Println()
	fmt.Println("Set google_calendar.credentials_path (or GOOGLE_CALENDAR_CREDENTIALS) to this file")
	fmt.Println("and share the target calendar with the service account email above.")
}
