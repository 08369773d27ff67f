package domain

import (
	"fmt"
	"strings"

	"github.com/varthajanapada/newsroom-backend/internal/common"
)

// Canonical classification tag values
const (
	MagazineTypeMagazine  = "magazine"
	MagazineTypeMagazine2 = "magazine2"

	NewsTypeState    = "statenews"
	NewsTypeDistrict = "districtnews"
	NewsTypeSpecial  = "specialnews"
)

var magazineTypeAliases = map[string]string{
	"magazine":  MagazineTypeMagazine,
	"mag":       MagazineTypeMagazine,
	"magazine2": MagazineTypeMagazine2,
	"mag2":      MagazineTypeMagazine2,
}

var newsTypeAliases = map[string]string{
	"statenews":     NewsTypeState,
	"state":         NewsTypeState,
	"state_news":    NewsTypeState,
	"districtnews":  NewsTypeDistrict,
	"district":      NewsTypeDistrict,
	"district_news": NewsTypeDistrict,
	"specialnews":   NewsTypeSpecial,
	"special":       NewsTypeSpecial,
	"special_news":  NewsTypeSpecial,
}

// NormalizeMagazineType canonicalizes a magazineType tag value.
// Empty input returns empty (tag unset). Unrecognized input is a
// validation error; callers must reject the request before any write.
func NormalizeMagazineType(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", nil
	}
	if canonical, ok := magazineTypeAliases[s]; ok {
		return canonical, nil
	}
	return "", fmt.Errorf("%w: invalid magazineType %q, use 'magazine' or 'magazine2'", common.ErrInvalidInput, raw)
}

// NormalizeNewsType canonicalizes a newsType tag value.
// Same contract as NormalizeMagazineType.
func NormalizeNewsType(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", nil
	}
	if canonical, ok := newsTypeAliases[s]; ok {
		return canonical, nil
	}
	return "", fmt.Errorf("%w: invalid newsType %q, use 'statenews', 'districtnews', or 'specialnews'", common.ErrInvalidInput, raw)
}
