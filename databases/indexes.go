package databases

import (
	"context"
	"net/http"

	"github.com/andyle182810/gappwrite/params"
)

const (
	IndexKey      = "key"
	IndexFullText = "fulltext"
	IndexUnique   = "unique"
)

func (s *Service) ListIndexes(ctx context.Context, collectionID string) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, s.collectionPath(collectionID, "indexes"), params.New())
}

// CreateIndex indexes attributes. orders holds ASC or DESC per attribute and
// may be nil.
func (s *Service) CreateIndex(
	ctx context.Context,
	collectionID string,
	key string,
	indexType string,
	attributes []string,
	orders []string,
) (*http.Response, error) {
	p := params.New().
		Set("key", params.String(key)).
		Set("type", params.String(indexType)).
		Set("attributes", params.Strings(attributes)).
		Set("orders", params.Strings(orders))

	return s.call(ctx, http.MethodPost, s.collectionPath(collectionID, "indexes"), p)
}

func (s *Service) GetIndex(ctx context.Context, collectionID, key string) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, s.collectionPath(collectionID, "indexes", key), params.New())
}

func (s *Service) DeleteIndex(ctx context.Context, collectionID, key string) (*http.Response, error) {
	return s.call(ctx, http.MethodDelete, s.collectionPath(collectionID, "indexes", key), params.New())
}
