package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugrc/stewardlink/pkg/errors"
	"github.com/ugrc/stewardlink/pkg/reconcile"
)

func TestParseRows(t *testing.T) {
	values := [][]interface{}{
		{"Steward", "SGID Data Layer", "Endpoint"},
		{"Parks Division", "Parks", "https://opendata.gis.utah.gov/datasets/parks"},
		{"Roads Crew", " Roads ", " https://opendata.gis.utah.gov/datasets/roads "},
		{"", "", ""},
		{"Orphan Steward", "Trails"},
	}

	entries, err := parseRows(values)
	require.NoError(t, err)

	assert.Equal(t, []reconcile.RosterEntry{
		{SourceTableName: "Parks", OpenDataLink: "https://opendata.gis.utah.gov/datasets/parks"},
		{SourceTableName: "Roads", OpenDataLink: "https://opendata.gis.utah.gov/datasets/roads"},
		{SourceTableName: "Trails", OpenDataLink: ""},
	}, entries)
}

func TestParseRowsHeaderCaseInsensitive(t *testing.T) {
	values := [][]interface{}{
		{"sgid data layer", "ENDPOINT"},
		{"Parks", "p.url"},
	}

	entries, err := parseRows(values)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Parks", entries[0].SourceTableName)
}

func TestParseRowsEmptyWorksheet(t *testing.T) {
	_, err := parseRows(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestParseRowsMissingColumns(t *testing.T) {
	tests := []struct {
		name   string
		header []interface{}
	}{
		{"missing layer", []interface{}{"Steward", "Endpoint"}},
		{"missing endpoint", []interface{}{"Steward", "SGID Data Layer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseRows([][]interface{}{tt.header})
			require.Error(t, err)

			var vErr *errors.ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestParseRowsHeaderOnly(t *testing.T) {
	entries, err := parseRows([][]interface{}{{"SGID Data Layer", "Endpoint"}})
	require.NoError(t, err)
	assert.Empty(t, entries)
}
