package databases

import (
	"context"
	"net/http"

	"github.com/andyle182810/gappwrite/params"
)

// DocumentListOptions filter and order a document listing. OrderTypes pair
// up with OrderAttributes by position.
type DocumentListOptions struct {
	Queries         []string               `json:"queries"`
	Limit           int                    `json:"limit"           validate:"gte=0,lte=100"`
	Offset          int                    `json:"offset"          validate:"gte=0"`
	Cursor          string                 `json:"cursor"`
	CursorDirection params.CursorDirection `json:"cursorDirection" validate:"omitempty,oneof=after before"`
	OrderAttributes []string               `json:"orderAttributes"`
	OrderTypes      []params.OrderType     `json:"orderTypes"      validate:"omitempty,dive,oneof=ASC DESC"`
}

func (o *DocumentListOptions) Params() (*params.Params, error) {
	p := params.New()
	if o == nil {
		return p, nil
	}

	if err := params.Validate(o); err != nil {
		return nil, err
	}

	var orderTypes params.Value

	if o.OrderTypes != nil {
		items := make([]params.Value, 0, len(o.OrderTypes))
		for _, orderType := range o.OrderTypes {
			items = append(items, params.Enum(orderType))
		}

		orderTypes = params.List(items...)
	}

	p.Set("queries", params.Strings(o.Queries)).
		Set("limit", params.NonZero(o.Limit)).
		Set("offset", params.NonZero(o.Offset)).
		Set("cursor", params.NonEmpty(o.Cursor)).
		Set("cursorDirection", params.NonEmpty(string(o.CursorDirection))).
		Set("orderAttributes", params.Strings(o.OrderAttributes)).
		Set("orderTypes", orderTypes)

	return p, nil
}

func (s *Service) ListDocuments(
	ctx context.Context,
	collectionID string,
	opts *DocumentListOptions,
) (*http.Response, error) {
	p, err := opts.Params()
	if err != nil {
		return nil, err
	}

	return s.call(ctx, http.MethodGet, s.collectionPath(collectionID, "documents"), p)
}

func (s *Service) CreateDocument(
	ctx context.Context,
	collectionID string,
	documentID string,
	data *params.Params,
	read []string,
	write []string,
) (*http.Response, error) {
	p := params.New().
		Set("documentId", params.String(documentID)).
		Set("data", params.Object(data)).
		Set("read", params.Strings(read)).
		Set("write", params.Strings(write))

	return s.call(ctx, http.MethodPost, s.collectionPath(collectionID, "documents"), p)
}

func (s *Service) GetDocument(ctx context.Context, collectionID, documentID string) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, s.collectionPath(collectionID, "documents", documentID), params.New())
}

// UpdateDocument patches data; nil read or write keep the current
// permissions.
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

	return s.call(ctx, http.MethodPatch, s.collectionPath(collectionID, "documents", documentID), p)
}

func (s *Service) DeleteDocument(ctx context.Context, collectionID, documentID string) (*http.Response, error) {
	return s.call(ctx, http.MethodDelete, s.collectionPath(collectionID, "documents", documentID), params.New())
}

func (s *Service) GetDocumentLogs(ctx context.Context, collectionID, documentID string) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, s.collectionPath(collectionID, "documents", documentID, "logs"), params.New())
}
