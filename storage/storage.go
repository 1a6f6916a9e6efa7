// Package storage manages buckets and the files stored in them.
package storage

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

// BucketOptions are the optional bucket settings. A nil Enabled leaves the
// server default (enabled) in place.
type BucketOptions struct {
	Read                  []string
	Write                 []string
	Enabled               *bool
	MaximumFileSize       *int
	AllowedFileExtensions []string
	Encryption            bool
	Antivirus             bool
}

func (o *BucketOptions) apply(p *params.Params) *params.Params {
	if o == nil {
		return p
	}

	return p.Set("read", params.Strings(o.Read)).
		Set("write", params.Strings(o.Write)).
		Set("enabled", params.BoolPtr(o.Enabled)).
		Set("maximumFileSize", params.IntPtr(o.MaximumFileSize)).
		Set("allowedFileExtensions", params.Strings(o.AllowedFileExtensions)).
		Set("encryption", params.Flag(o.Encryption)).
		Set("antivirus", params.Flag(o.Antivirus))
}

func (s *Service) call(ctx context.Context, method, path string, p *params.Params) (*http.Response, error) {
	return s.client.Call(ctx, method, path, httpclient.JSONHeaders(), p)
}

func bucketPath(bucketID string, rest ...string) string {
	return httpclient.Path(append([]string{"storage", "buckets", bucketID}, rest...)...)
}

func filePath(bucketID, fileID string, rest ...string) string {
	return bucketPath(bucketID, append([]string{"files", fileID}, rest...)...)
}

func (s *Service) ListBuckets(ctx context.Context, opts *params.ListOptions) (*http.Response, error) {
	p, err := opts.Params()
	if err != nil {
		return nil, err
	}

	return s.call(ctx, http.MethodGet, "/storage/buckets", p)
}

// CreateBucket makes a bucket. permission is "file" or "bucket".
func (s *Service) CreateBucket(
	ctx context.Context,
	bucketID string,
	name string,
	permission string,
	opts *BucketOptions,
) (*http.Response, error) {
	p := params.New().
		Set("bucketId", params.String(bucketID)).
		Set("name", params.String(name)).
		Set("permission", params.String(permission))

	return s.call(ctx, http.MethodPost, "/storage/buckets", opts.apply(p))
}

func (s *Service) GetBucket(ctx context.Context, bucketID string) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, bucketPath(bucketID), params.New())
}

func (s *Service) UpdateBucket(
	ctx context.Context,
	bucketID string,
	name string,
	permission string,
	opts *BucketOptions,
) (*http.Response, error) {
	p := params.New().
		Set("name", params.String(name)).
		Set("permission", params.String(permission))

	return s.call(ctx, http.MethodPut, bucketPath(bucketID), opts.apply(p))
}

func (s *Service) DeleteBucket(ctx context.Context, bucketID string) (*http.Response, error) {
	return s.call(ctx, http.MethodDelete, bucketPath(bucketID), params.New())
}

func (s *Service) GetUsage(ctx context.Context) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, "/storage/usage", params.New())
}

func (s *Service) GetBucketUsage(ctx context.Context, bucketID string) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, httpclient.Path("storage", bucketID, "usage"), params.New())
}
