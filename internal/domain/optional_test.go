package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalUnmarshal(t *testing.T) {
	t.Run("absent key leaves field untouched", func(t *testing.T) {
		var req UpdateNewsRequest
		require.NoError(t, json.Unmarshal([]byte(`{"title":"t"}`), &req))

		assert.False(t, req.NewsType.Set)
		assert.False(t, req.MagazineType.Set)
	})

	t.Run("explicit null clears", func(t *testing.T) {
		var req UpdateNewsRequest
		require.NoError(t, json.Unmarshal([]byte(`{"newsType":null}`), &req))

		assert.True(t, req.NewsType.Set)
		assert.False(t, req.NewsType.Valid)
	})

	t.Run("value is carried", func(t *testing.T) {
		var req UpdateNewsRequest
		require.NoError(t, json.Unmarshal([]byte(`{"newsType":"state"}`), &req))

		assert.True(t, req.NewsType.Set)
		assert.True(t, req.NewsType.Valid)
		assert.Equal(t, "state", req.NewsType.Value)
	})
}

func TestUpdateNewsRequestApply(t *testing.T) {
	article := &News{
		Title:        "old title",
		Description:  "old description",
		NewsType:     NewsTypeState,
		MagazineType: MagazineTypeMagazine,
	}

	t.Run("null clears the tag", func(t *testing.T) {
		var req UpdateNewsRequest
		require.NoError(t, json.Unmarshal([]byte(`{"newsType":null}`), &req))
		require.NoError(t, req.Normalize())

		n := *article
		req.Apply(&n)
		assert.Empty(t, n.NewsType)
		assert.Equal(t, MagazineTypeMagazine, n.MagazineType, "absent key untouched")
		assert.Equal(t, "old title", n.Title)
	})

	t.Run("alias is canonicalized before apply", func(t *testing.T) {
		var req UpdateNewsRequest
		require.NoError(t, json.Unmarshal([]byte(`{"newsType":"district_news"}`), &req))
		require.NoError(t, req.Normalize())

		n := *article
		req.Apply(&n)
		assert.Equal(t, NewsTypeDistrict, n.NewsType)
	})

	t.Run("invalid alias is rejected", func(t *testing.T) {
		var req UpdateNewsRequest
		require.NoError(t, json.Unmarshal([]byte(`{"newsType":"bogus"}`), &req))
		assert.Error(t, req.Normalize())
	})

	t.Run("partial update only touches present fields", func(t *testing.T) {
		var req UpdateNewsRequest
		require.NoError(t, json.Unmarshal([]byte(`{"title":"new title"}`), &req))
		require.NoError(t, req.Normalize())

		n := *article
		req.Apply(&n)
		assert.Equal(t, "new title", n.Title)
		assert.Equal(t, "old description", n.Description)
		assert.Equal(t, NewsTypeState, n.NewsType)
	})
}
