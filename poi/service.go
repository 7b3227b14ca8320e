package poi

import (
	"context"

	"github.com/imathiatour/poi-server/catalog"
	apperrors "github.com/imathiatour/poi-server/internal/errors"
	"github.com/imathiatour/poi-server/wikidata"
)

// detailImageCount is the number of images every detail view carries.
const detailImageCount = 3

// extraImages pads detail views whose entity record supplies fewer images
// than detailImageCount.
var extraImages = []string{
	"https://picsum.photos/seed/poi1/1000/700",
	"https://picsum.photos/seed/poi2/1000/700",
	"https://picsum.photos/seed/poi3/1000/700",
}

// Fetcher retrieves a raw entity record by Wikidata ID.
type Fetcher interface {
	Fetch(ctx context.Context, qid string) (*wikidata.Entity, error)
}

// Service merges catalog stubs with parsed entity fields into response
// views.
type Service struct {
	catalog *catalog.Index
	fetcher Fetcher
}

// NewService creates a POI service over a catalog index and an entity
// fetcher.
func NewService(idx *catalog.Index, fetcher Fetcher) *Service {
	return &Service{
		catalog: idx,
		fetcher: fetcher,
	}
}

// ListCategories returns the category summaries of the catalog.
func (s *Service) ListCategories() []catalog.CategorySummary {
	return s.catalog.Categories()
}

// ListPois returns the enriched POIs of a category. Stubs without a
// Wikidata ID are listed with their seed name and zero coordinates; a
// failed fetch fails the whole listing rather than masking the gap.
func (s *Service) ListPois(ctx context.Context, categoryID string) ([]ListItem, error) {
	stubs, ok := s.catalog.StubsFor(categoryID)
	if !ok {
		return nil, apperrors.ErrCategoryNotFound
	}

	items := make([]ListItem, 0, len(stubs))
	for _, stub := range stubs {
		if stub.WikidataQID == "" {
			items = append(items, ListItem{ID: stub.ID, Title: stub.Name})
			continue
		}

		entity, err := s.fetcher.Fetch(ctx, stub.WikidataQID)
		if err != nil {
			return nil, apperrors.Wrapf(err, "[ListPois] enriching %s", stub.ID)
		}

		fields := wikidata.Parse(stub.WikidataQID, entity)
		items = append(items, ListItem{
			ID:    stub.ID,
			Title: fields.Title,
			Lat:   fields.Lat,
			Lon:   fields.Lon,
			Image: fields.Image,
			Short: fields.Short,
		})
	}
	return items, nil
}

// GetPoi returns the enriched detail view for a single POI.
func (s *Service) GetPoi(ctx context.Context, poiID string) (*Detail, error) {
	stub, categoryID, ok := s.catalog.FindStub(poiID)
	if !ok {
		return nil, apperrors.ErrPoiNotFound
	}
	if stub.WikidataQID == "" {
		return nil, apperrors.ErrNoWikidataID
	}

	entity, err := s.fetcher.Fetch(ctx, stub.WikidataQID)
	if err != nil {
		return nil, apperrors.Wrapf(err, "[GetPoi] enriching %s", stub.ID)
	}

	fields := wikidata.Parse(stub.WikidataQID, entity)
	return &Detail{
		ID:            stub.ID,
		CategoryID:    categoryID,
		CategoryTitle: s.catalog.TitleOf(categoryID),
		Title:         fields.Title,
		Short:         fields.Short,
		Lat:           fields.Lat,
		Lon:           fields.Lon,
		WikipediaURL:  fields.WikipediaURL,
		Images:        detailImages(fields.Image),
		Description:   fields.Short,
	}, nil
}

// detailImages builds the fixed-size image list for a detail view: the
// primary image when present, padded with placeholders and truncated to
// exactly detailImageCount entries.
func detailImages(primary *string) []string {
	images := make([]string, 0, detailImageCount)
	if primary != nil {
		images = append(images, *primary)
	}
	for _, extra := range extraImages {
		if len(images) >= detailImageCount {
			break
		}
		images = append(images, extra)
	}
	return images
}
