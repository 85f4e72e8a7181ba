// Command gcal-auth authorizes Google Calendar access once and writes the
// OAuth token used by the API.
//
// Usage:
//
//	go run ./cmd/gcal-auth [-credentials google-credentials.json] [-token token.json]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"day-planner/pkg/gcalendar"
	"day-planner/pkg/log"
)

func main() {
	credsPath := flag.String("credentials", "google-credentials.json", "OAuth desktop app credentials file")
	tokenPath := flag.String("token", "token.json", "where to write the token")
	flag.Parse()

	ctx := context.Background()
	logger := log.Init(log.ZapConfig{Level: "info", Mode: "debug", Encoding: "console", ColorEnabled: true})

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read credentials file %q: %v", *credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		logger.Fatalf(ctx, "Failed to parse credentials: %v (is %q an OAuth desktop app credentials file?)", err, *credsPath)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: open this URL in a browser and sign in to Google:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		logger.Fatalf(ctx, "Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(ctx, code)
	if err != nil {
		logger.Fatalf(ctx, "Failed to exchange authorization code: %v", err)
	}

	if err := gcalendar.SaveToken(*tokenPath, tok); err != nil {
		logger.Fatalf(ctx, "Failed to save token: %v", err)
	}

	fmt.Println()
	fmt.Printf("Token saved to %s\n", *tokenPath)
	fmt.Println("Restart the API so Google Calendar is picked up.")
}
