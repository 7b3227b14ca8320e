package fetcherfake

import (
	"context"

	apperrors "github.com/imathiatour/poi-server/internal/errors"
	"github.com/imathiatour/poi-server/wikidata"
)

// FakeFetcher is an in-memory poi.Fetcher for tests.
type FakeFetcher struct {
	entities map[string]*wikidata.Entity
	err      error
	Calls    []string
}

// NewFakeFetcher creates an empty fake fetcher.
func NewFakeFetcher() *FakeFetcher {
	return &FakeFetcher{
		entities: make(map[string]*wikidata.Entity),
	}
}

// Add registers an entity under a qid.
func (f *FakeFetcher) Add(qid string, entity *wikidata.Entity) *FakeFetcher {
	f.entities[qid] = entity
	return f
}

// FailWith makes every Fetch return err.
func (f *FakeFetcher) FailWith(err error) *FakeFetcher {
	f.err = err
	return f
}

func (f *FakeFetcher) Fetch(ctx context.Context, qid string) (*wikidata.Entity, error) {
	f.Calls = append(f.Calls, qid)
	if f.err != nil {
		return nil, f.err
	}
	entity, ok := f.entities[qid]
	if !ok {
		return nil, apperrors.Wrapf(apperrors.ErrUpstream, "entity %s not registered", qid)
	}
	return entity, nil
}
