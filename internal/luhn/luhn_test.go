package luhn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		digits []uint8
		want   bool
	}{
		{"known valid id", []uint8{1, 5, 8, 1, 8, 7, 2, 3, 5, 3}, true},
		{"second known valid id", []uint8{1, 5, 6, 4, 4, 3, 7, 0, 9, 1}, true},
		{"last digit off by one", []uint8{1, 5, 8, 1, 8, 7, 2, 3, 5, 4}, false},
		{"empty sequence", nil, false},
		{"single zero", []uint8{0}, true},
		{"two digits valid", []uint8{2, 6}, true},
		{"two digits invalid", []uint8{2, 7}, false},
		{"element out of range", []uint8{1, 5, 8, 1, 8, 7, 2, 3, 5, 13}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.digits))
		})
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	t.Run("fixed-length prefixed generation", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			digits, err := GenerateWithPrefix(10, []uint8{2})
			require.NoError(t, err)
			require.Len(t, digits, 10)
			assert.Equal(t, uint8(2), digits[0])
			for _, d := range digits {
				assert.LessOrEqual(t, d, uint8(9))
			}
			require.True(t, Validate(digits))

			// Mutating the check digit must break the relation.
			digits[9] = (digits[9] + 1) % 10
			assert.False(t, Validate(digits))
		}
	})

	t.Run("multi-digit prefix is preserved", func(t *testing.T) {
		digits, err := GenerateWithPrefix(10, []uint8{2, 4, 6})
		require.NoError(t, err)
		require.Len(t, digits, 10)
		assert.Equal(t, []uint8{2, 4, 6}, digits[:3])
		assert.True(t, Validate(digits))
	})

	t.Run("minimum length is a bare check digit", func(t *testing.T) {
		digits, err := GenerateWithPrefix(1, nil)
		require.NoError(t, err)
		require.Len(t, digits, 1)
		assert.True(t, Validate(digits))
	})

	t.Run("rejects non-positive length", func(t *testing.T) {
		_, err := GenerateWithPrefix(0, nil)
		require.Error(t, err)
		_, err = GenerateWithPrefix(-3, nil)
		require.Error(t, err)
	})

	t.Run("rejects a prefix that fills the sequence", func(t *testing.T) {
		_, err := GenerateWithPrefix(3, []uint8{1, 2, 3})
		require.Error(t, err)
		_, err = GenerateWithPrefix(2, []uint8{1, 2, 3})
		require.Error(t, err)
	})

	t.Run("rejects prefix digits out of range", func(t *testing.T) {
		_, err := GenerateWithPrefix(10, []uint8{12})
		require.Error(t, err)
	})
}
