package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/http/cookiejar"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/andyle182810/gappwrite/params"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// Caller is the transport every service delegates to.
type Caller interface {
	Call(
		ctx context.Context,
		method string,
		path string,
		headers map[string]string,
		p *params.Params,
	) (*http.Response, error)
	Endpoint() string
}

type TokenProvider interface {
	GetToken(ctx context.Context) (string, error)
	InvalidateToken()
}

// Observer receives one notification per finished call. Status is zero when
// no response was received.
type Observer interface {
	ObserveCall(method string, status int, duration time.Duration)
}

var _ Caller = (*Client)(nil)

type Client struct {
	mu         sync.RWMutex
	endpoint   string
	selfSigned bool
	headers    map[string]string
	config     map[string]string

	httpClient    *http.Client
	timeout       time.Duration
	timeoutSet    bool
	transport     *tlsTransport
	rest          *resty.Client
	logger        zerolog.Logger
	observer      Observer
	limiter       *rate.Limiter
	tokenProvider TokenProvider
	requestIDKey  any
}

func New(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	c := &Client{
		mu:         sync.RWMutex{},
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		selfSigned: false,
		headers: map[string]string{
			ContentTypeKey:       ContentTypeJSON,
			HeaderSDKVersion:     SDKVersion,
			HeaderResponseFormat: ResponseFormat,
		},
		config:        map[string]string{},
		httpClient:    nil,
		timeout:       DefaultTimeout,
		timeoutSet:    false,
		transport:     nil,
		rest:          nil,
		logger:        log.Logger,
		observer:      nil,
		limiter:       nil,
		tokenProvider: nil,
		requestIDKey:  nil,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.rest = c.buildRest()
	c.transport.setInsecure(c.selfSigned)

	return c
}

func (c *Client) buildRest() *resty.Client {
	var httpClient http.Client
	if c.httpClient != nil {
		httpClient = *c.httpClient
	}

	base := httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	c.transport = newTLSTransport(base, c.logger)
	httpClient.Transport = c.transport

	if httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err == nil {
			httpClient.Jar = jar
		}
	}

	switch {
	case c.timeoutSet:
		httpClient.Timeout = c.timeout
	case httpClient.Timeout == 0:
		httpClient.Timeout = DefaultTimeout
	}

	rest := resty.NewWithClient(&httpClient)
	rest.SetLogger(newRestyLogger(c.logger))

	return rest
}

func (c *Client) Endpoint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.endpoint
}

func (c *Client) SetEndpoint(endpoint string) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.endpoint = strings.TrimSuffix(endpoint, "/")

	return c
}

// SetSelfSigned toggles certificate verification for this client only.
func (c *Client) SetSelfSigned(selfSigned bool) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selfSigned = selfSigned
	c.transport.setInsecure(selfSigned)

	return c
}

func (c *Client) SelfSigned() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.selfSigned
}

func (c *Client) SetProject(value string) *Client {
	return c.setConfig("project", HeaderProject, value)
}

func (c *Client) SetKey(value string) *Client {
	return c.setConfig("key", HeaderKey, value)
}

func (c *Client) SetJWT(value string) *Client {
	return c.setConfig("jwt", HeaderJWT, value)
}

func (c *Client) SetLocale(value string) *Client {
	return c.setConfig("locale", HeaderLocale, value)
}

func (c *Client) setConfig(key, header, value string) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.config[key] = value
	c.headers[header] = value

	return c
}

func (c *Client) Config() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return maps.Clone(c.config)
}

func (c *Client) Headers() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return maps.Clone(c.headers)
}

// URL builds an absolute URL for endpoints the caller opens directly, such
// as image previews.
func (c *Client) URL(path string, p *params.Params) (string, error) {
	return BuildURL(c.Endpoint(), path, p)
}

func (c *Client) CloseIdleConnections() {
	c.transport.CloseIdleConnections()
}

// Call sends one request. GET parameters travel in the query string,
// multipart calls send form parts and every other call sends a JSON object.
// A status below 400 returns the response with its body unread; the caller
// closes it.
func (c *Client) Call(
	ctx context.Context,
	method string,
	path string,
	headers map[string]string,
	p *params.Params,
) (*http.Response, error) {
	method = strings.ToUpper(method)
	start := time.Now()

	resp, err := c.call(ctx, method, path, headers, p)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}

	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Code != 0 {
		status = apiErr.Code
	}

	duration := time.Since(start)

	if c.observer != nil {
		c.observer.ObserveCall(method, status, duration)
	}

	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("method", method).
			Str("path", path).
			Int("status", status).
			Dur("duration", duration).
			Msg("appwrite call failed")

		return nil, err
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Dur("duration", duration).
		Msg("appwrite call")

	return resp, nil
}

func (c *Client) call(
	ctx context.Context,
	method string,
	path string,
	headers map[string]string,
	p *params.Params,
) (*http.Response, error) {
	if p == nil {
		p = params.New()
	}

	c.mu.RLock()
	endpoint := c.endpoint
	defaults := maps.Clone(c.headers)
	c.mu.RUnlock()

	req := c.rest.R().SetContext(ctx).SetDoNotParseResponse(true)

	fullURL := endpoint + path

	isGet := method == http.MethodGet
	isMultipart := !isGet && strings.EqualFold(lookupHeader(headers, ContentTypeKey), ContentTypeMultipart)

	switch {
	case isGet:
		query, err := p.Encode()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeBody, err)
		}

		if query != "" {
			fullURL += "?" + query
		}
	case isMultipart:
		closeFiles, err := setMultipartBody(req, p)
		if err != nil {
			return nil, err
		}

		defer closeFiles()
	default:
		body, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeBody, err)
		}

		req.SetBody(body)
		req.SetHeader(HeaderContentType, ContentTypeJSON)
	}

	applyHeaders(req, defaults, headers)

	if c.requestIDKey != nil {
		if id, ok := ctx.Value(c.requestIDKey).(string); ok && id != "" {
			req.SetHeader(HeaderXRequestID, id)
		}
	}

	if c.tokenProvider != nil {
		token, err := c.tokenProvider.GetToken(ctx)
		if err != nil {
			return nil, newCallError(ErrAuthFailed, err)
		}

		req.SetHeader(HeaderJWT, token)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, newCallError(ErrRequestFailed, err)
		}
	}

	resp, err := req.Execute(method, fullURL)
	if err != nil {
		return nil, newCallError(ErrRequestFailed, err)
	}

	raw := resp.RawResponse
	if raw == nil {
		return nil, newCallError(ErrRequestFailed, ErrNoResponse)
	}

	if raw.StatusCode < http.StatusBadRequest {
		return raw, nil
	}

	if raw.StatusCode == http.StatusUnauthorized && c.tokenProvider != nil {
		c.tokenProvider.InvalidateToken()
	}

	return nil, readServiceError(raw)
}

// applyHeaders merges default and per-call headers onto the request. Every
// content-type entry is offered as an Accept value; the body encoding sets
// the real Content-Type.
func applyHeaders(req *resty.Request, defaults, headers map[string]string) {
	merged := make(http.Header, len(defaults)+len(headers))
	accept := make([]string, 0, 2) //nolint:mnd

	for _, source := range []map[string]string{defaults, headers} {
		for _, key := range slices.Sorted(maps.Keys(source)) {
			value := source[key]

			if strings.EqualFold(key, ContentTypeKey) {
				if !slices.Contains(accept, value) {
					accept = append(accept, value)
				}

				continue
			}

			merged.Set(key, value)
		}
	}

	for key, values := range merged {
		req.SetHeader(key, values[0])
	}

	if len(accept) > 0 {
		req.SetHeader(HeaderAccept, strings.Join(accept, ", "))
	}
}

func setMultipartBody(req *resty.Request, p *params.Params) (func(), error) {
	fields, err := p.FormFields()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeBody, err)
	}

	form := make(map[string]string, len(fields))
	closers := make([]io.Closer, 0, 1)

	closeAll := func() {
		for _, closer := range closers {
			_ = closer.Close()
		}
	}

	for _, field := range fields {
		if field.File == nil {
			form[field.Name] = field.Value

			continue
		}

		reader, err := field.File.Open()
		if err != nil {
			closeAll()

			return nil, fmt.Errorf("%w: %w", ErrEncodeBody, err)
		}

		closers = append(closers, reader)
		req.SetFileReader(field.Name, field.File.Name, reader)
	}

	req.SetMultipartFormData(form)

	return closeAll, nil
}

func readServiceError(resp *http.Response) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewServiceError(resp.StatusCode, "", "", "")
	}

	message := string(body)
	errType := ""

	if strings.Contains(resp.Header.Get(HeaderContentType), ContentTypeJSON) {
		var errResp ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil {
			message = errResp.Message
			errType = errResp.Type
		}
	}

	return NewServiceError(resp.StatusCode, message, string(body), errType)
}

func lookupHeader(headers map[string]string, name string) string {
	for key, value := range headers {
		if strings.EqualFold(key, name) {
			return value
		}
	}

	return ""
}
