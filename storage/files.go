package storage

import (
	"context"
	"net/http"

	"github.com/andyle182810/gappwrite/httpclient"
	"github.com/andyle182810/gappwrite/params"
)

// PreviewOptions shape an image preview. Zero fields are left to the server
// defaults (center gravity, quality 100, original format).
type PreviewOptions struct {
	Width        int     `json:"width"        validate:"gte=0,lte=4000"`
	Height       int     `json:"height"       validate:"gte=0,lte=4000"`
	Gravity      string  `json:"gravity"      validate:"omitempty,oneof=center top-left top top-right left right bottom-left bottom bottom-right"` //nolint:lll
	Quality      int     `json:"quality"      validate:"gte=0,lte=100"`
	BorderWidth  int     `json:"borderWidth"  validate:"gte=0,lte=100"`
	BorderColor  string  `json:"borderColor"`
	BorderRadius int     `json:"borderRadius" validate:"gte=0,lte=4000"`
	Opacity      float64 `json:"opacity"      validate:"gte=0,lte=1"`
	Rotation     int     `json:"rotation"     validate:"gte=-360,lte=360"`
	Background   string  `json:"background"`
	Output       string  `json:"output"       validate:"omitempty,oneof=jpg jpeg png gif webp"`
}

func (o *PreviewOptions) params() (*params.Params, error) {
	p := params.New()
	if o == nil {
		return p, nil
	}

	if err := params.Validate(o); err != nil {
		return nil, err
	}

	var opacity params.Value
	if o.Opacity != 0 {
		opacity = params.Float(o.Opacity)
	}

	return p.Set("width", params.NonZero(o.Width)).
		Set("height", params.NonZero(o.Height)).
		Set("gravity", params.NonEmpty(o.Gravity)).
		Set("quality", params.NonZero(o.Quality)).
		Set("borderWidth", params.NonZero(o.BorderWidth)).
		Set("borderColor", params.NonEmpty(o.BorderColor)).
		Set("borderRadius", params.NonZero(o.BorderRadius)).
		Set("opacity", opacity).
		Set("rotation", params.NonZero(o.Rotation)).
		Set("background", params.NonEmpty(o.Background)).
		Set("output", params.NonEmpty(o.Output)), nil
}

func (s *Service) ListFiles(ctx context.Context, bucketID string, opts *params.ListOptions) (*http.Response, error) {
	p, err := opts.Params()
	if err != nil {
		return nil, err
	}

	return s.call(ctx, http.MethodGet, bucketPath(bucketID, "files"), p)
}

// CreateFile uploads file as a multipart request.
func (s *Service) CreateFile(
	ctx context.Context,
	bucketID string,
	fileID string,
	file *params.InputFile,
	read []string,
	write []string,
) (*http.Response, error) {
	p := params.New().
		Set("fileId", params.String(fileID)).
		Set("file", params.File(file)).
		Set("read", params.Strings(read)).
		Set("write", params.Strings(write))

	return s.client.Call(ctx, http.MethodPost, bucketPath(bucketID, "files"), httpclient.MultipartHeaders(), p)
}

func (s *Service) GetFile(ctx context.Context, bucketID, fileID string) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, filePath(bucketID, fileID), params.New())
}

func (s *Service) UpdateFile(
	ctx context.Context,
	bucketID string,
	fileID string,
	read []string,
	write []string,
) (*http.Response, error) {
	p := params.New().
		Set("read", params.Strings(read)).
		Set("write", params.Strings(write))

	return s.call(ctx, http.MethodPut, filePath(bucketID, fileID), p)
}

func (s *Service) DeleteFile(ctx context.Context, bucketID, fileID string) (*http.Response, error) {
	return s.call(ctx, http.MethodDelete, filePath(bucketID, fileID), params.New())
}

func (s *Service) GetFileDownload(bucketID, fileID string) (string, error) {
	return httpclient.BuildURL(s.client.Endpoint(), filePath(bucketID, fileID, "download"), params.New())
}

func (s *Service) GetFilePreview(bucketID, fileID string, opts *PreviewOptions) (string, error) {
	p, err := opts.params()
	if err != nil {
		return "", err
	}

	return httpclient.BuildURL(s.client.Endpoint(), filePath(bucketID, fileID, "preview"), p)
}

func (s *Service) GetFileView(bucketID, fileID string) (string, error) {
	return httpclient.BuildURL(s.client.Endpoint(), filePath(bucketID, fileID, "view"), params.New())
}
