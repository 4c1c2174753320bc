package confinit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for _, tc := range []struct {
		name        string
		expected    Format
		expectedErr bool
	}{
		{name: "toml", expected: TOMLFormat},
		{name: ".toml", expected: TOMLFormat},
		{name: "TOML", expected: TOMLFormat},
		{name: "json", expected: JSONFormat},
		{name: "json5", expected: JSON5Format},
		{name: ".yaml", expected: YAMLFormat},
		{name: "ron", expectedErr: true},
		{name: "", expectedErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := ParseFormat(tc.name)
			if tc.expectedErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnsupportedFormat))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, actual)
			}
		})
	}
}

func TestFormatNames(t *testing.T) {
	assert.Equal(t, []string{"json", "json5", "toml", "yaml"}, FormatNames())
}
