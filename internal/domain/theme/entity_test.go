//go:build unit

package theme_test

import (
	"testing"

	"roomescape-api/internal/domain/theme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTheme(t *testing.T) {
	tests := []struct {
		name        string
		themeName   string
		description string
		thumbnail   string
		errIs       error
	}{
		{
			name:        "valid theme",
			themeName:   "Vault",
			description: "Crack the vault before dawn",
			thumbnail:   "https://img.example.com/vault.png",
		},
		{
			name:        "blank name rejected",
			themeName:   "  ",
			description: "desc",
			thumbnail:   "https://img.example.com/x.png",
			errIs:       theme.ErrBlankName,
		},
		{
			name:        "blank description rejected",
			themeName:   "Vault",
			description: "",
			thumbnail:   "https://img.example.com/x.png",
			errIs:       theme.ErrBlankDescription,
		},
		{
			name:        "blank thumbnail rejected",
			themeName:   "Vault",
			description: "desc",
			thumbnail:   "   ",
			errIs:       theme.ErrBlankThumbnailURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, err := theme.NewTheme(tt.themeName, tt.description, tt.thumbnail)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.themeName, th.Name())
			assert.Equal(t, int64(0), th.ID())
		})
	}
}

func TestReconstructTheme(t *testing.T) {
	th := theme.ReconstructTheme(7, "Vault", "desc", "https://img.example.com/vault.png")
	assert.Equal(t, int64(7), th.ID())
	assert.Equal(t, "Vault", th.Name())
}
