package wikidata

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/imathiatour/poi-server/internal/utils"
)

// Wikidata property IDs used for enrichment.
const (
	propertyCoordinates = "P625"
	propertyImage       = "P18"
)

// thumbWidth is the fixed pixel width requested for Commons thumbnails.
const thumbWidth = 1000

// preferredLanguages is the order in which multilingual values are
// resolved before falling back to any available language.
var preferredLanguages = []string{"el", "en"}

// Fields is the flat set of presentation fields extracted from an entity.
// Lat and Lon are 0.0 when the entity carries no coordinate claim; callers
// can only distinguish "no coordinate data" by that sentinel.
type Fields struct {
	Title        string
	Short        *string
	Lat          float64
	Lon          float64
	Image        *string
	WikipediaURL *string
}

// Parse normalizes a raw entity record into presentation fields. The qid
// serves as the title of last resort when the entity has no labels at all.
func Parse(qid string, entity *Entity) Fields {
	fields := Fields{Title: qid}

	if title := pickLang(entity.Labels); title != nil {
		fields.Title = *title
	}
	fields.Short = pickLang(entity.Descriptions)

	if raw := entity.claimValue(propertyCoordinates); raw != nil {
		var coord struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		}
		if err := json.Unmarshal(raw, &coord); err == nil {
			fields.Lat = coord.Latitude
			fields.Lon = coord.Longitude
		}
	}

	if raw := entity.claimValue(propertyImage); raw != nil {
		var filename string
		if err := json.Unmarshal(raw, &filename); err == nil && strings.TrimSpace(filename) != "" {
			fields.Image = utils.Ptr(CommonsThumbURL(strings.TrimSpace(filename), thumbWidth))
		}
	}

	if link, ok := entity.Sitelinks["elwiki"]; ok && link.URL != "" {
		fields.WikipediaURL = utils.Ptr(link.URL)
	} else if link, ok := entity.Sitelinks["enwiki"]; ok && link.URL != "" {
		fields.WikipediaURL = utils.Ptr(link.URL)
	}

	return fields
}

// pickLang resolves a multilingual value map against preferredLanguages,
// falling back to any available value and nil for an empty map.
func pickLang(values map[string]LangValue) *string {
	for _, lang := range preferredLanguages {
		if v, ok := values[lang]; ok && v.Value != "" {
			return utils.Ptr(v.Value)
		}
	}
	for _, v := range values {
		if v.Value != "" {
			return utils.Ptr(v.Value)
		}
	}
	return nil
}

// CommonsThumbURL derives a Wikimedia Commons thumbnail URL for an image
// filename at the given pixel width. The fixed "4/4a" path segment is the
// convention of the source system; the real host derives that segment from
// a hash of the filename, so the URL is best effort and may not resolve
// for every file.
func CommonsThumbURL(filename string, width int) string {
	safe := strings.ReplaceAll(filename, " ", "_")
	return fmt.Sprintf("https://upload.wikimedia.org/wikipedia/commons/thumb/4/4a/%s/%dpx-%s", safe, width, safe)
}
