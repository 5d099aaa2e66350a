package sheets

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// RowAppender appends booking log rows to the studio's spreadsheet.
type RowAppender interface {
	AppendRow(ctx context.Context, values []any) error
}

// GoogleSheet implements RowAppender against the Google Sheets API (v4).
type GoogleSheet struct {
	svc           *gsheets.Service
	spreadsheetID string
	appendRange   string
}

func NewGoogleSheet(ctx context.Context, ts oauth2.TokenSource, spreadsheetID, appendRange string) (*GoogleSheet, error) {
	svc, err := gsheets.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("sheets: failed to build service: %w", err)
	}
	return &GoogleSheet{svc: svc, spreadsheetID: spreadsheetID, appendRange: appendRange}, nil
}

// AppendRow inserts a single row at the end of the configured range.
func (g *GoogleSheet) AppendRow(ctx context.Context, values []any) error {
	body := &gsheets.ValueRange{Values: [][]any{values}}
	_, err := g.svc.Spreadsheets.Values.Append(g.spreadsheetID, g.appendRange, body).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: failed to append row: %w", err)
	}
	return nil
}
