package wikidata

import "encoding/json"

// LangValue is a single language-tagged text value, as returned under an
// entity's labels and descriptions.
type LangValue struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

// Sitelink points to a wiki article about the entity on a given site.
type Sitelink struct {
	Site  string `json:"site"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Claim is a single structured property-value pair within an entity. The
// datavalue payload is shape-dependent (string for images, object for
// coordinates), so it is kept raw and decoded by the accessor that knows
// the expected shape.
type Claim struct {
	MainSnak struct {
		DataValue struct {
			Value json.RawMessage `json:"value"`
		} `json:"datavalue"`
	} `json:"mainsnak"`
}

// Entity is the raw wbgetentities record for a single Wikidata item.
type Entity struct {
	Labels       map[string]LangValue `json:"labels"`
	Descriptions map[string]LangValue `json:"descriptions"`
	Claims       map[string][]Claim   `json:"claims"`
	Sitelinks    map[string]Sitelink  `json:"sitelinks"`
}

// claimValue returns the raw datavalue of the first claim for a property,
// or nil when the property is absent.
func (e *Entity) claimValue(property string) json.RawMessage {
	claims := e.Claims[property]
	if len(claims) == 0 {
		return nil
	}
	return claims[0].MainSnak.DataValue.Value
}
