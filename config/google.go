package config

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scopes required by the calendar, spreadsheet and drive integrations.
var GoogleScopes = []string{
	"https://www.googleapis.com/auth/calendar",
	"https://www.googleapis.com/auth/spreadsheets",
	"https://www.googleapis.com/auth/drive",
}

// GoogleTokenSource loads the authorized-user token from the GOOGLE_TOKEN_JSON
// environment variable, falling back to a local token.json file. A missing
// token is a fatal configuration error: every route depends on it.
func GoogleTokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	raw := []byte(os.Getenv("GOOGLE_TOKEN_JSON"))
	if len(raw) == 0 {
		b, err := os.ReadFile("token.json")
		if err != nil {
			return nil, fmt.Errorf("config: google token not found in GOOGLE_TOKEN_JSON or token.json: %w", err)
		}
		raw = b
	}

	creds, err := google.CredentialsFromJSON(ctx, raw, GoogleScopes...)
	if err != nil {
		return nil, fmt.Errorf("config: failed to parse google credentials: %w", err)
	}
	return creds.TokenSource, nil
}
