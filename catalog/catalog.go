package catalog

import (
	_ "embed"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// maxStubsPerCategory caps how many POIs a category keeps from the seed.
// The cap is applied at load time; readers never see the overflow.
const maxStubsPerCategory = 5

//go:embed seed.json
var embeddedSeed []byte

// Stub is a local catalog reference to an external record, prior to
// enrichment. WikidataQID may be empty, in which case the stub cannot be
// enriched.
type Stub struct {
	ID          string
	Name        string
	WikidataQID string
}

// Category holds an ordered list of POI stubs under a display title.
type Category struct {
	ID    string
	Title string
	Stubs []Stub
}

// CategorySummary is the read model for category listings.
type CategorySummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Count int    `json:"count"`
}

// Index is an in-memory, read-only index of categories and POI stubs.
// It is built once at startup and never mutated afterwards, so it may be
// shared across concurrent requests without locking.
type Index struct {
	categories []Category
}

type seedCategory struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	PoiIDs []string `json:"poiIds"`
}

type seedPoi struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	WikidataQID string `json:"wikidataQid"`
}

type seedFile struct {
	Categories []seedCategory     `json:"categories"`
	Pois       map[string]seedPoi `json:"pois"`
}

// Load builds an Index from seed JSON. Only the first maxStubsPerCategory
// poiIds of a category are considered; ids without a matching entry in
// the pois map are skipped, so a category can end up with fewer stubs.
func Load(data []byte) (*Index, error) {
	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, errors.Wrap(err, "[catalog.Load] failed to decode seed")
	}

	idx := &Index{categories: make([]Category, 0, len(seed.Categories))}
	for _, sc := range seed.Categories {
		category := Category{ID: sc.ID, Title: sc.Name}
		poiIDs := sc.PoiIDs
		if len(poiIDs) > maxStubsPerCategory {
			poiIDs = poiIDs[:maxStubsPerCategory]
		}
		for _, poiID := range poiIDs {
			poi, ok := seed.Pois[poiID]
			if !ok {
				continue
			}
			category.Stubs = append(category.Stubs, Stub{
				ID:          poi.ID,
				Name:        poi.Name,
				WikidataQID: poi.WikidataQID,
			})
		}
		idx.categories = append(idx.categories, category)
	}
	return idx, nil
}

// LoadFile builds an Index from a seed file on disk.
func LoadFile(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[catalog.LoadFile] failed to read %s", path)
	}
	return Load(data)
}

// LoadDefault builds an Index from the embedded seed.
func LoadDefault() (*Index, error) {
	return Load(embeddedSeed)
}

// Categories returns category summaries in seed order.
func (idx *Index) Categories() []CategorySummary {
	summaries := make([]CategorySummary, 0, len(idx.categories))
	for _, c := range idx.categories {
		summaries = append(summaries, CategorySummary{
			ID:    c.ID,
			Title: c.Title,
			Count: len(c.Stubs),
		})
	}
	return summaries
}

// StubsFor returns the stubs of a category, or false if the category is
// unknown.
func (idx *Index) StubsFor(categoryID string) ([]Stub, bool) {
	for _, c := range idx.categories {
		if c.ID == categoryID {
			return c.Stubs, true
		}
	}
	return nil, false
}

// FindStub scans all categories for a POI and returns it with its owning
// category ID. Insertion order wins if an ID were ever duplicated.
func (idx *Index) FindStub(poiID string) (Stub, string, bool) {
	for _, c := range idx.categories {
		for _, stub := range c.Stubs {
			if stub.ID == poiID {
				return stub, c.ID, true
			}
		}
	}
	return Stub{}, "", false
}

// TitleOf returns a category's display title, falling back to the ID
// itself for an unknown category.
func (idx *Index) TitleOf(categoryID string) string {
	for _, c := range idx.categories {
		if c.ID == categoryID {
			return c.Title
		}
	}
	return categoryID
}
