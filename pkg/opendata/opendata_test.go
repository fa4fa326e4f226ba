package opendata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ugrc/stewardlink/pkg/opendata"
)

func TestKebabCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Utah Parks", "utah-parks"},
		{"Utah Parks & Recreation", "utah-parks-recreation"},
		{"  Trails  ", "trails"},
		{"Roads_2024", "roads-2024"},
		{"", ""},
		{"---", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, opendata.KebabCase(tt.in), "input %q", tt.in)
	}
}

func TestDatasetURL(t *testing.T) {
	assert.Equal(t,
		"https://opendata.gis.utah.gov/datasets/utah-county-boundaries",
		opendata.DatasetURL("Utah County Boundaries"))
	assert.Empty(t, opendata.DatasetURL("  "))
}
