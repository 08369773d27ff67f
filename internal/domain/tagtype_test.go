package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/varthajanapada/newsroom-backend/internal/common"
)

func TestNormalizeMagazineType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"canonical magazine", "magazine", MagazineTypeMagazine, false},
		{"mag alias", "mag", MagazineTypeMagazine, false},
		{"canonical magazine2", "magazine2", MagazineTypeMagazine2, false},
		{"mag2 alias", "mag2", MagazineTypeMagazine2, false},
		{"uppercase alias", "MAG2", MagazineTypeMagazine2, false},
		{"surrounding whitespace", "  magazine  ", MagazineTypeMagazine, false},
		{"empty leaves tag unset", "", "", false},
		{"whitespace only", "   ", "", false},
		{"unknown value", "mag3", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeMagazineType(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeNewsType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"canonical statenews", "statenews", NewsTypeState, false},
		{"state alias", "state", NewsTypeState, false},
		{"state_news alias", "state_news", NewsTypeState, false},
		{"district alias", "district", NewsTypeDistrict, false},
		{"district_news alias", "district_news", NewsTypeDistrict, false},
		{"special alias", "special", NewsTypeSpecial, false},
		{"mixed case", "State_News", NewsTypeState, false},
		{"empty leaves tag unset", "", "", false},
		{"unknown value", "nationalnews", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeNewsType(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Canonical output fed back in must map to itself.
func TestNormalizeIsIdempotent(t *testing.T) {
	for alias := range newsTypeAliases {
		first, err := NormalizeNewsType(alias)
		assert.NoError(t, err)
		second, err := NormalizeNewsType(first)
		assert.NoError(t, err)
		assert.Equal(t, first, second, "alias %q", alias)
	}
	for alias := range magazineTypeAliases {
		first, err := NormalizeMagazineType(alias)
		assert.NoError(t, err)
		second, err := NormalizeMagazineType(first)
		assert.NoError(t, err)
		assert.Equal(t, first, second, "alias %q", alias)
	}
}
