package wikidata_test

import (
	"encoding/json"
	"testing"

	"github.com/imathiatour/poi-server/wikidata"
	"github.com/stretchr/testify/require"
)

// mustEntity decodes a raw wbgetentities entity fragment.
func mustEntity(t *testing.T, raw string) *wikidata.Entity {
	t.Helper()
	var entity wikidata.Entity
	require.NoError(t, json.Unmarshal([]byte(raw), &entity))
	return &entity
}

func TestParse_TitleSelection(t *testing.T) {
	t.Run("greek label preferred over english", func(t *testing.T) {
		entity := mustEntity(t, `{
			"labels": {
				"en": {"language": "en", "value": "Castle"},
				"el": {"language": "el", "value": "Κάστρο"}
			}
		}`)
		fields := wikidata.Parse("Q1", entity)
		require.Equal(t, "Κάστρο", fields.Title)
	})

	t.Run("english label when greek is absent", func(t *testing.T) {
		entity := mustEntity(t, `{
			"labels": {"en": {"language": "en", "value": "Castle"}}
		}`)
		fields := wikidata.Parse("Q1", entity)
		require.Equal(t, "Castle", fields.Title)
	})

	t.Run("any label when neither preferred language exists", func(t *testing.T) {
		entity := mustEntity(t, `{
			"labels": {"de": {"language": "de", "value": "Burg"}}
		}`)
		fields := wikidata.Parse("Q1", entity)
		require.Equal(t, "Burg", fields.Title)
	})

	t.Run("qid when there are no labels at all", func(t *testing.T) {
		entity := mustEntity(t, `{"labels": {}}`)
		fields := wikidata.Parse("Q42", entity)
		require.Equal(t, "Q42", fields.Title)
	})
}

func TestParse_ShortDescription(t *testing.T) {
	t.Run("greek description preferred", func(t *testing.T) {
		entity := mustEntity(t, `{
			"descriptions": {
				"en": {"language": "en", "value": "medieval castle"},
				"el": {"language": "el", "value": "μεσαιωνικό κάστρο"}
			}
		}`)
		fields := wikidata.Parse("Q1", entity)
		require.NotNil(t, fields.Short)
		require.Equal(t, "μεσαιωνικό κάστρο", *fields.Short)
	})

	t.Run("absent when there are no descriptions", func(t *testing.T) {
		entity := mustEntity(t, `{"descriptions": {}}`)
		fields := wikidata.Parse("Q1", entity)
		require.Nil(t, fields.Short)
	})
}

func TestParse_Coordinates(t *testing.T) {
	t.Run("extracted exactly from the P625 claim", func(t *testing.T) {
		entity := mustEntity(t, `{
			"claims": {
				"P625": [{"mainsnak": {"datavalue": {"value": {"latitude": 40.5, "longitude": 22.1}}}}]
			}
		}`)
		fields := wikidata.Parse("Q1", entity)
		require.Equal(t, 40.5, fields.Lat)
		require.Equal(t, 22.1, fields.Lon)
	})

	t.Run("zero sentinel when the claim is absent", func(t *testing.T) {
		entity := mustEntity(t, `{"claims": {}}`)
		fields := wikidata.Parse("Q1", entity)
		require.Equal(t, 0.0, fields.Lat)
		require.Equal(t, 0.0, fields.Lon)
	})
}

func TestParse_Image(t *testing.T) {
	t.Run("thumbnail derived from the P18 filename", func(t *testing.T) {
		entity := mustEntity(t, `{
			"claims": {
				"P18": [{"mainsnak": {"datavalue": {"value": "Castle Tower.jpg"}}}]
			}
		}`)
		fields := wikidata.Parse("Q1", entity)
		require.NotNil(t, fields.Image)
		require.Contains(t, *fields.Image, "Castle_Tower.jpg")
		require.Contains(t, *fields.Image, "1000px-Castle_Tower.jpg")
	})

	t.Run("blank filename yields no image", func(t *testing.T) {
		entity := mustEntity(t, `{
			"claims": {
				"P18": [{"mainsnak": {"datavalue": {"value": "   "}}}]
			}
		}`)
		fields := wikidata.Parse("Q1", entity)
		require.Nil(t, fields.Image)
	})

	t.Run("absent claim yields no image", func(t *testing.T) {
		entity := mustEntity(t, `{"claims": {}}`)
		fields := wikidata.Parse("Q1", entity)
		require.Nil(t, fields.Image)
	})
}

func TestParse_WikipediaLink(t *testing.T) {
	t.Run("greek article preferred", func(t *testing.T) {
		entity := mustEntity(t, `{
			"sitelinks": {
				"elwiki": {"site": "elwiki", "title": "Κάστρο", "url": "https://el.wikipedia.org/wiki/Κάστρο"},
				"enwiki": {"site": "enwiki", "title": "Castle", "url": "https://en.wikipedia.org/wiki/Castle"}
			}
		}`)
		fields := wikidata.Parse("Q1", entity)
		require.NotNil(t, fields.WikipediaURL)
		require.Equal(t, "https://el.wikipedia.org/wiki/Κάστρο", *fields.WikipediaURL)
	})

	t.Run("english article as fallback", func(t *testing.T) {
		entity := mustEntity(t, `{
			"sitelinks": {
				"enwiki": {"site": "enwiki", "title": "Castle", "url": "https://en.wikipedia.org/wiki/Castle"}
			}
		}`)
		fields := wikidata.Parse("Q1", entity)
		require.NotNil(t, fields.WikipediaURL)
		require.Equal(t, "https://en.wikipedia.org/wiki/Castle", *fields.WikipediaURL)
	})

	t.Run("absent when no article exists", func(t *testing.T) {
		entity := mustEntity(t, `{"sitelinks": {}}`)
		fields := wikidata.Parse("Q1", entity)
		require.Nil(t, fields.WikipediaURL)
	})
}

func TestCommonsThumbURL(t *testing.T) {
	url := wikidata.CommonsThumbURL("Castle Tower.jpg", 1000)
	require.Equal(t, "https://upload.wikimedia.org/wikipedia/commons/thumb/4/4a/Castle_Tower.jpg/1000px-Castle_Tower.jpg", url)
}
