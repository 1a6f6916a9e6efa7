// Package avatars builds image URLs for icons, flags, favicons, initials and
// QR codes. No request is made; the URLs are meant for <img> tags and
// downloads, so they carry no authentication headers.
package avatars

import (
	"github.com/andyle182810/gappwrite/httpclient"
	"github.com/andyle182810/gappwrite/params"
)

type Service struct {
	client httpclient.Caller
}

func New(client httpclient.Caller) *Service {
	return &Service{client: client}
}

// ImageOptions size and compress icon images. Zero fields use the server
// defaults (100x100, quality 100).
type ImageOptions struct {
	Width   int `json:"width"   validate:"gte=0,lte=2000"`
	Height  int `json:"height"  validate:"gte=0,lte=2000"`
	Quality int `json:"quality" validate:"gte=0,lte=100"`
}

func (o *ImageOptions) params() (*params.Params, error) {
	p := params.New()
	if o == nil {
		return p, nil
	}

	if err := params.Validate(o); err != nil {
		return nil, err
	}

	return p.Set("width", params.NonZero(o.Width)).
		Set("height", params.NonZero(o.Height)).
		Set("quality", params.NonZero(o.Quality)), nil
}

// InitialsOptions shape an initials avatar. An empty Name falls back to the
// signed-in user's name, or their email when the name is unset.
type InitialsOptions struct {
	Name       string `json:"name"`
	Width      int    `json:"width"      validate:"gte=0,lte=2000"`
	Height     int    `json:"height"     validate:"gte=0,lte=2000"`
	Color      string `json:"color"      validate:"omitempty,hexadecimal"`
	Background string `json:"background" validate:"omitempty,hexadecimal"`
}

// QROptions shape a QR code. Zero Size and Margin use the server defaults
// (400 and 1). Download asks the server to send the image as an attachment.
type QROptions struct {
	Size     int  `json:"size"     validate:"gte=0,lte=1000"`
	Margin   int  `json:"margin"   validate:"gte=0,lte=10"`
	Download bool `json:"download"`
}

func (s *Service) url(path string, p *params.Params) (string, error) {
	return httpclient.BuildURL(s.client.Endpoint(), path, p)
}

func (s *Service) icon(kind, code string, opts *ImageOptions) (string, error) {
	p, err := opts.params()
	if err != nil {
		return "", err
	}

	return s.url(httpclient.Path("avatars", kind, code), p)
}

// GetBrowser returns the icon URL for a browser code such as "ch" or "ff".
func (s *Service) GetBrowser(code string, opts *ImageOptions) (string, error) {
	return s.icon("browsers", code, opts)
}

// GetCreditCard returns the icon URL for a card provider code such as "visa".
func (s *Service) GetCreditCard(code string, opts *ImageOptions) (string, error) {
	return s.icon("credit-cards", code, opts)
}

// GetFlag returns the flag URL for an ISO 3166-1 alpha-2 country code.
func (s *Service) GetFlag(code string, opts *ImageOptions) (string, error) {
	return s.icon("flags", code, opts)
}

// GetFavicon returns a URL serving the favicon of the site at remote.
func (s *Service) GetFavicon(remote string) (string, error) {
	return s.url("/avatars/favicon", params.New().Set("url", params.String(remote)))
}

// GetImage returns a URL that fetches and crops the image at remote.
func (s *Service) GetImage(remote string, width, height int) (string, error) {
	p := params.New().
		Set("url", params.String(remote)).
		Set("width", params.NonZero(width)).
		Set("height", params.NonZero(height))

	return s.url("/avatars/image", p)
}

func (s *Service) GetInitials(opts *InitialsOptions) (string, error) {
	p := params.New()

	if opts != nil {
		if err := params.Validate(opts); err != nil {
			return "", err
		}

		p.Set("name", params.NonEmpty(opts.Name)).
			Set("width", params.NonZero(opts.Width)).
			Set("height", params.NonZero(opts.Height)).
			Set("color", params.NonEmpty(opts.Color)).
			Set("background", params.NonEmpty(opts.Background))
	}

	return s.url("/avatars/initials", p)
}

func (s *Service) GetQR(text string, opts *QROptions) (string, error) {
	p := params.New().Set("text", params.String(text))

	if opts != nil {
		if err := params.Validate(opts); err != nil {
			return "", err
		}

		p.Set("size", params.NonZero(opts.Size)).
			Set("margin", params.NonZero(opts.Margin)).
			Set("download", params.Flag(opts.Download))
	}

	return s.url("/avatars/qr", p)
}
