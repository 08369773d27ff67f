package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/varthajanapada/newsroom-backend/internal/domain"
)

// NewsListFilter supports ?newsType=, ?category= and ?isLive= query
// filters on news listings. Type aliases are accepted and canonicalized.
func NewsListFilter(c *gin.Context) ([]any, error) {
	where := map[string]any{}

	if raw := c.Query("newsType"); raw != "" {
		nt, err := domain.NormalizeNewsType(raw)
		if err != nil {
			return nil, err
		}
		where["news_type"] = nt
	}
	if category := c.Query("category"); category != "" {
		where["category_id"] = category
	}
	if live := c.Query("isLive"); live != "" {
		where["is_live"] = live == "true"
	}

	if len(where) == 0 {
		return nil, nil
	}
	return []any{where}, nil
}

// VideoListFilter supports ?category= and ?magazineType= on video listings
func VideoListFilter(c *gin.Context) ([]any, error) {
	where := map[string]any{}

	if raw := c.Query("magazineType"); raw != "" {
		mt, err := domain.NormalizeMagazineType(raw)
		if err != nil {
			return nil, err
		}
		where["magazine_type"] = mt
	}
	if category := c.Query("category"); category != "" {
		where["category_id"] = category
	}

	if len(where) == 0 {
		return nil, nil
	}
	return []any{where}, nil
}

// MagazineListFilter supports ?year= and ?month= on magazine listings
func MagazineListFilter(c *gin.Context) ([]any, error) {
	where := map[string]any{}

	if year := c.Query("year"); year != "" {
		where["published_year"] = year
	}
	if month := c.Query("month"); month != "" {
		where["published_month"] = month
	}

	if len(where) == 0 {
		return nil, nil
	}
	return []any{where}, nil
}
