// Package databases manages databases, their collections, attributes,
// documents and indexes. A Service is bound to one database id.
package databases

import (
	"context"
	"net/http"

	"github.com/andyle182810/gappwrite/httpclient"
	"github.com/andyle182810/gappwrite/params"
)

type Service struct {
	client     httpclient.Caller
	databaseID string
}

func New(client httpclient.Caller, databaseID string) *Service {
	return &Service{
		client:     client,
		databaseID: databaseID,
	}
}

func (s *Service) DatabaseID() string {
	return s.databaseID
}

func (s *Service) call(ctx context.Context, method, path string, p *params.Params) (*http.Response, error) {
	return s.client.Call(ctx, method, path, httpclient.JSONHeaders(), p)
}

func (s *Service) path(rest ...string) string {
	return httpclient.Path(append([]string{"databases", s.databaseID}, rest...)...)
}

func (s *Service) collectionPath(collectionID string, rest ...string) string {
	return s.path(append([]string{"collections", collectionID}, rest...)...)
}

func (s *Service) List(ctx context.Context, opts *params.ListOptions) (*http.Response, error) {
	p, err := opts.Params()
	if err != nil {
		return nil, err
	}

	return s.call(ctx, http.MethodGet, "/databases", p)
}

// Create makes the database this service is bound to.
func (s *Service) Create(ctx context.Context, name string) (*http.Response, error) {
	p := params.New().
		Set("databaseId", params.String(s.databaseID)).
		Set("name", params.String(name))

	return s.call(ctx, http.MethodPost, "/databases", p)
}

func (s *Service) GetUsage(ctx context.Context, usageRange string) (*http.Response, error) {
	p := params.New().Set("range", params.NonEmpty(usageRange))

	return s.call(ctx, http.MethodGet, "/databases/usage", p)
}

func (s *Service) Get(ctx context.Context) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, s.path(), params.New())
}

func (s *Service) Update(ctx context.Context, name string) (*http.Response, error) {
	p := params.New().Set("name", params.String(name))

	return s.call(ctx, http.MethodPut, s.path(), p)
}

func (s *Service) Delete(ctx context.Context) (*http.Response, error) {
	return s.call(ctx, http.MethodDelete, s.path(), params.New())
}

func (s *Service) ListLogs(ctx context.Context) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, s.path("logs"), params.New())
}

func (s *Service) GetDatabaseUsage(ctx context.Context) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, s.path("usage"), params.New())
}

func (s *Service) ListCollections(ctx context.Context, opts *params.ListOptions) (*http.Response, error) {
	p, err := opts.Params()
	if err != nil {
		return nil, err
	}

	return s.call(ctx, http.MethodGet, s.path("collections"), p)
}

// CreateCollection makes a collection. permission is "document" or
// "collection" and decides whether read/write apply per document.
func (s *Service) CreateCollection(
	ctx context.Context,
	collectionID string,
	name string,
	permission string,
	read []string,
	write []string,
) (*http.Response, error) {
	p := params.New().
		Set("collectionId", params.String(collectionID)).
		Set("name", params.String(name)).
		Set("permission", params.String(permission)).
		Set("read", params.Strings(read)).
		Set("write", params.Strings(write))

	return s.call(ctx, http.MethodPost, s.path("collections"), p)
}

func (s *Service) GetCollection(ctx context.Context, collectionID string) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, s.collectionPath(collectionID), params.New())
}

func (s *Service) UpdateCollection(
	ctx context.Context,
	collectionID string,
	name string,
	permission string,
	read []string,
	write []string,
) (*http.Response, error) {
	p := params.New().
		Set("name", params.String(name)).
		Set("permission", params.String(permission)).
		Set("read", params.Strings(read)).
		Set("write", params.Strings(write))

	return s.call(ctx, http.MethodPut, s.collectionPath(collectionID), p)
}

func (s *Service) DeleteCollection(ctx context.Context, collectionID string) (*http.Response, error) {
	return s.call(ctx, http.MethodDelete, s.collectionPath(collectionID), params.New())
}

func (s *Service) GetCollectionLogs(ctx context.Context, collectionID string) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, s.collectionPath(collectionID, "logs"), params.New())
}

func (s *Service) GetCollectionUsage(ctx context.Context, collectionID string) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, s.collectionPath(collectionID, "usage"), params.New())
}
