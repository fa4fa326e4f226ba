// Package sheets reads the stewardship roster from its Google Sheets
// worksheet. Rows are validated and typed at this boundary; the sheet is
// read-only to stewardlink.
package sheets

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/ugrc/stewardlink/internal/config"
	"github.com/ugrc/stewardlink/pkg/errors"
	"github.com/ugrc/stewardlink/pkg/reconcile"
)

// Worksheet column headers, as maintained by the stewards.
const (
	headerLayer    = "SGID Data Layer"
	headerEndpoint = "Endpoint"
)

// Roster reads stewardship entries from one worksheet.
type Roster struct {
	service       *sheets.Service
	spreadsheetID string
	worksheet     string
}

var _ reconcile.RosterReader = (*Roster)(nil)

// New builds a read-only Sheets client from a service-account credential
// file. Authorization failures map to the source-unavailable contract.
func New(ctx context.Context, cfg config.Sheet) (*Roster, error) {
	service, err := sheets.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, errors.WrapSource("roster", "authorize", err)
	}

	return &Roster{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		worksheet:     cfg.Worksheet,
	}, nil
}

// Entries returns every roster row from the worksheet, in sheet order.
func (r *Roster) Entries(ctx context.Context) ([]reconcile.RosterEntry, error) {
	// Quoting the worksheet name keeps names with spaces addressable.
	readRange := fmt.Sprintf("'%s'", r.worksheet)

	resp, err := r.service.Spreadsheets.Values.Get(r.spreadsheetID, readRange).
		Context(ctx).Do()
	if err != nil {
		return nil, errors.WrapSource("roster", "read", err)
	}

	entries, err := parseRows(resp.Values)
	if err != nil {
		return nil, errors.WrapSource("roster", "parse", err)
	}

	return entries, nil
}

// parseRows converts raw worksheet values into typed roster entries. The
// first row must be the header row naming the layer and endpoint columns.
func parseRows(values [][]interface{}) ([]reconcile.RosterEntry, error) {
	if len(values) == 0 {
		return nil, errors.NewValidationError("", nil, "worksheet is empty")
	}

	layerCol, endpointCol := -1, -1
	for i, cell := range values[0] {
		switch {
		case headerMatches(cell, headerLayer):
			layerCol = i
		case headerMatches(cell, headerEndpoint):
			endpointCol = i
		}
	}
	if layerCol < 0 {
		return nil, errors.NewValidationError(headerLayer, nil, "header column not found")
	}
	if endpointCol < 0 {
		return nil, errors.NewValidationError(headerEndpoint, nil, "header column not found")
	}

	var entries []reconcile.RosterEntry
	for _, row := range values[1:] {
		layer := cellString(row, layerCol)
		endpoint := cellString(row, endpointCol)
		if layer == "" && endpoint == "" {
			continue
		}

		entries = append(entries, reconcile.RosterEntry{
			SourceTableName: layer,
			OpenDataLink:    endpoint,
		})
	}

	return entries, nil
}

func headerMatches(cell interface{}, name string) bool {
	return strings.EqualFold(strings.TrimSpace(fmt.Sprint(cell)), name)
}

func cellString(row []interface{}, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[col]))
}
