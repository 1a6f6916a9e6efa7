package httpclient

import (
	"maps"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	DefaultEndpoint = "https://appwrite.io/v1"
	DefaultTimeout  = 30 * time.Second
	SDKVersion      = "appwrite:go:0.3.0"
	ResponseFormat  = "0.9.0"

	HeaderContentType    = "Content-Type"
	HeaderAccept         = "Accept"
	HeaderXRequestID     = "X-Request-ID"
	HeaderSDKVersion     = "x-sdk-version"
	HeaderResponseFormat = "X-Appwrite-Response-Format"
	HeaderProject        = "X-Appwrite-Project"
	HeaderKey            = "X-Appwrite-Key"
	HeaderJWT            = "X-Appwrite-JWT"
	HeaderLocale         = "X-Appwrite-Locale"

	// ContentTypeKey is the per-call header key services use to pick the body
	// encoding.
	ContentTypeKey       = "content-type"
	ContentTypeJSON      = "application/json"
	ContentTypeMultipart = "multipart/form-data"
)

type Option func(*Client)

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
		c.timeoutSet = true
	}
}

// WithHTTPClient uses a copy of httpClient. Its transport is cloned so that
// TLS settings changed through SetSelfSigned stay local to this client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithObserver(observer Observer) Option {
	return func(c *Client) {
		c.observer = observer
	}
}

// WithRateLimit makes every call wait for a token from a limiter allowing
// limit calls per second with the given burst.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(limit, burst)
	}
}

// WithTokenProvider sends the provider's token as the JWT header on every
// call and invalidates it when the server answers 401.
func WithTokenProvider(provider TokenProvider) Option {
	return func(c *Client) {
		c.tokenProvider = provider
	}
}

func WithRequestIDKey(key any) Option {
	return func(c *Client) {
		c.requestIDKey = key
	}
}

func WithDefaultHeaders(headers map[string]string) Option {
	return func(c *Client) {
		maps.Copy(c.headers, headers)
	}
}

func WithSelfSigned(selfSigned bool) Option {
	return func(c *Client) {
		c.selfSigned = selfSigned
	}
}

// JSONHeaders is the per-call header map for JSON endpoints.
func JSONHeaders() map[string]string {
	return map[string]string{ContentTypeKey: ContentTypeJSON}
}

// MultipartHeaders is the per-call header map for upload endpoints.
func MultipartHeaders() map[string]string {
	return map[string]string{ContentTypeKey: ContentTypeMultipart}
}
