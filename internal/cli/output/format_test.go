package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	t.Run("Table", func(t *testing.T) {
		f, err := ParseFormat("table")
		require.NoError(t, err)
		assert.Equal(t, FormatTable, f)
	})

	t.Run("EmptyDefaultsToTable", func(t *testing.T) {
		f, err := ParseFormat("")
		require.NoError(t, err)
		assert.Equal(t, FormatTable, f)
	})

	t.Run("CaseAndWhitespaceInsensitive", func(t *testing.T) {
		f, err := ParseFormat("  JSON ")
		require.NoError(t, err)
		assert.Equal(t, FormatJSON, f)
	})

	t.Run("YmlAlias", func(t *testing.T) {
		f, err := ParseFormat("yml")
		require.NoError(t, err)
		assert.Equal(t, FormatYAML, f)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := ParseFormat("xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid output format")
	})
}
