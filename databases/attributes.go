package databases

import (
	"context"
	"net/http"

	"github.com/andyle182810/gappwrite/params"
)

type FloatAttribute struct {
	Min     *float64
	Max     *float64
	Default *float64
	Array   bool
}

type IntegerAttribute struct {
	Min     *int64
	Max     *int64
	Default *int64
	Array   bool
}

func (s *Service) ListAttributes(ctx context.Context, collectionID string) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, s.collectionPath(collectionID, "attributes"), params.New())
}

func (s *Service) createAttribute(
	ctx context.Context,
	collectionID string,
	kind string,
	p *params.Params,
) (*http.Response, error) {
	return s.call(ctx, http.MethodPost, s.collectionPath(collectionID, "attributes", kind), p)
}

func attributeParams(key string, required bool) *params.Params {
	return params.New().
		Set("key", params.String(key)).
		Set("required", params.Bool(required))
}

func (s *Service) CreateBooleanAttribute(
	ctx context.Context,
	collectionID string,
	key string,
	required bool,
	def *bool,
	array bool,
) (*http.Response, error) {
	p := attributeParams(key, required).
		Set("default", params.BoolPtr(def)).
		Set("array", params.Flag(array))

	return s.createAttribute(ctx, collectionID, "boolean", p)
}

func (s *Service) CreateEmailAttribute(
	ctx context.Context,
	collectionID string,
	key string,
	required bool,
	def string,
	array bool,
) (*http.Response, error) {
	p := attributeParams(key, required).
		Set("default", params.NonEmpty(def)).
		Set("array", params.Flag(array))

	return s.createAttribute(ctx, collectionID, "email", p)
}

func (s *Service) CreateEnumAttribute(
	ctx context.Context,
	collectionID string,
	key string,
	elements []string,
	required bool,
	def string,
	array bool,
) (*http.Response, error) {
	p := params.New().
		Set("key", params.String(key)).
		Set("elements", params.Strings(elements)).
		Set("required", params.Bool(required)).
		Set("default", params.NonEmpty(def)).
		Set("array", params.Flag(array))

	return s.createAttribute(ctx, collectionID, "enum", p)
}

func (s *Service) CreateFloatAttribute(
	ctx context.Context,
	collectionID string,
	key string,
	required bool,
	attr FloatAttribute,
) (*http.Response, error) {
	p := attributeParams(key, required).
		Set("min", params.FloatPtr(attr.Min)).
		Set("max", params.FloatPtr(attr.Max)).
		Set("default", params.FloatPtr(attr.Default)).
		Set("array", params.Flag(attr.Array))

	return s.createAttribute(ctx, collectionID, "float", p)
}

func (s *Service) CreateIntegerAttribute(
	ctx context.Context,
	collectionID string,
	key string,
	required bool,
	attr IntegerAttribute,
) (*http.Response, error) {
	p := attributeParams(key, required).
		Set("min", params.Int64Ptr(attr.Min)).
		Set("max", params.Int64Ptr(attr.Max)).
		Set("default", params.Int64Ptr(attr.Default)).
		Set("array", params.Flag(attr.Array))

	return s.createAttribute(ctx, collectionID, "integer", p)
}

func (s *Service) CreateIPAttribute(
	ctx context.Context,
	collectionID string,
	key string,
	required bool,
	def string,
	array bool,
) (*http.Response, error) {
	p := attributeParams(key, required).
		Set("default", params.NonEmpty(def)).
		Set("array", params.Flag(array))

	return s.createAttribute(ctx, collectionID, "ip", p)
}

// CreateStringAttribute adds a string attribute holding up to size
// characters.
func (s *Service) CreateStringAttribute(
	ctx context.Context,
	collectionID string,
	key string,
	size int,
	required bool,
	def string,
	array bool,
) (*http.Response, error) {
	p := params.New().
		Set("key", params.String(key)).
		Set("size", params.Int(size)).
		Set("required", params.Bool(required)).
		Set("default", params.NonEmpty(def)).
		Set("array", params.Flag(array))

	return s.createAttribute(ctx, collectionID, "string", p)
}

func (s *Service) CreateURLAttribute(
	ctx context.Context,
	collectionID string,
	key string,
	required bool,
	def string,
	array bool,
) (*http.Response, error) {
	p := attributeParams(key, required).
		Set("default", params.NonEmpty(def)).
		Set("array", params.Flag(array))

	return s.createAttribute(ctx, collectionID, "url", p)
}

func (s *Service) GetAttribute(ctx context.Context, collectionID, key string) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, s.collectionPath(collectionID, "attributes", key), params.New())
}

func (s *Service) DeleteAttribute(ctx context.Context, collectionID, key string) (*http.Response, error) {
	return s.call(ctx, http.MethodDelete, s.collectionPath(collectionID, "attributes", key), params.New())
}
