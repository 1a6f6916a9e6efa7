// Package database is the legacy single-database documents API served under
// /database.
package database

import (
	"context"
	"net/http"

	"github.com/andyle182810/gappwrite/httpclient"
	"github.com/andyle182810/gappwrite/params"
)

type Service struct {
	client httpclient.Caller
}

func New(client httpclient.Caller) *Service {
	return &Service{client: client}
}

type ListDocumentsOptions struct {
	Filters    []string         `json:"filters"`
	Limit      int              `json:"limit"      validate:"gte=0,lte=100"`
	Offset     int              `json:"offset"     validate:"gte=0"`
	OrderField string           `json:"orderField"`
	OrderType  params.OrderType `json:"orderType"  validate:"omitempty,oneof=ASC DESC"`
	OrderCast  string           `json:"orderCast"  validate:"omitempty,oneof=int string date time datetime"`
	Search     string           `json:"search"`
}

func (o *ListDocumentsOptions) Params() (*params.Params, error) {
	p := params.New()
	if o == nil {
		return p, nil
	}

	if err := params.Validate(o); err != nil {
		return nil, err
	}

	p.Set("filters", params.Strings(o.Filters)).
		Set("limit", params.NonZero(o.Limit)).
		Set("offset", params.NonZero(o.Offset)).
		Set("orderField", params.NonEmpty(o.OrderField)).
		Set("orderType", params.NonEmpty(string(o.OrderType))).
		Set("orderCast", params.NonEmpty(o.OrderCast)).
		Set("search", params.NonEmpty(o.Search))

	return p, nil
}

// CreateDocumentOptions attach permissions and, optionally, link the new
// document into a parent document's property.
type CreateDocumentOptions struct {
	Read               []string `json:"read"`
	Write              []string `json:"write"`
	ParentDocument     string   `json:"parentDocument"`
	ParentProperty     string   `json:"parentProperty"`
	ParentPropertyType string   `json:"parentPropertyType" validate:"omitempty,oneof=assign prepend append"`
}

func documentsPath(collectionID string, rest ...string) string {
	return httpclient.Path(append([]string{"database", "collections", collectionID, "documents"}, rest...)...)
}

func (s *Service) call(ctx context.Context, method, path string, p *params.Params) (*http.Response, error) {
	return s.client.Call(ctx, method, path, httpclient.JSONHeaders(), p)
}

func (s *Service) ListDocuments(
	ctx context.Context,
	collectionID string,
	opts *ListDocumentsOptions,
) (*http.Response, error) {
	p, err := opts.Params()
	if err != nil {
		return nil, err
	}

	return s.call(ctx, http.MethodGet, documentsPath(collectionID), p)
}

func (s *Service) CreateDocument(
	ctx context.Context,
	collectionID string,
	data *params.Params,
	opts *CreateDocumentOptions,
) (*http.Response, error) {
	p := params.New().Set("data", params.Object(data))

	if opts != nil {
		if err := params.Validate(opts); err != nil {
			return nil, err
		}

		p.Set("read", params.Strings(opts.Read)).
			Set("write", params.Strings(opts.Write)).
			Set("parentDocument", params.NonEmpty(opts.ParentDocument)).
			Set("parentProperty", params.NonEmpty(opts.ParentProperty)).
			Set("parentPropertyType", params.NonEmpty(opts.ParentPropertyType))
	}

	return s.call(ctx, http.MethodPost, documentsPath(collectionID), p)
}

func (s *Service) GetDocument(ctx context.Context, collectionID, documentID string) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, documentsPath(collectionID, documentID), params.New())
}

func (s *Service) UpdateDocument(
	ctx context.Context,
	collectionID string,
	documentID string,
	data *params.Params,
	read []string,
	write []string,
) (*http.Response, error) {
	p := params.New().
		Set("data", params.Object(data)).
		Set("read", params.Strings(read)).
		Set("write", params.Strings(write))

	return s.call(ctx, http.MethodPatch, documentsPath(collectionID, documentID), p)
}

func (s *Service) DeleteDocument(ctx context.Context, collectionID, documentID string) (*http.Response, error) {
	return s.call(ctx, http.MethodDelete, documentsPath(collectionID, documentID), params.New())
}
