// Package functions manages cloud functions, their deployments and their
// executions.
package functions

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

// FunctionOptions are the optional function settings. A zero Timeout leaves
// the server default (15 seconds).
type FunctionOptions struct {
	Vars     *params.Params `json:"vars"`
	Events   []string       `json:"events"`
	Schedule string         `json:"schedule"`
	Timeout  int            `json:"timeout"  validate:"gte=0,lte=900"`
}

func (o *FunctionOptions) apply(p *params.Params) (*params.Params, error) {
	if o == nil {
		return p, nil
	}

	if err := params.Validate(o); err != nil {
		return nil, err
	}

	return p.Set("vars", params.Object(o.Vars)).
		Set("events", params.Strings(o.Events)).
		Set("schedule", params.NonEmpty(o.Schedule)).
		Set("timeout", params.NonZero(o.Timeout)), nil
}

func (s *Service) call(ctx context.Context, method, path string, p *params.Params) (*http.Response, error) {
	return s.client.Call(ctx, method, path, httpclient.JSONHeaders(), p)
}

func functionPath(functionID string, rest ...string) string {
	return httpclient.Path(append([]string{"functions", functionID}, rest...)...)
}

func (s *Service) List(ctx context.Context, opts *params.ListOptions) (*http.Response, error) {
	p, err := opts.Params()
	if err != nil {
		return nil, err
	}

	return s.call(ctx, http.MethodGet, "/functions", p)
}

// Create registers a function. execute lists the roles allowed to run it and
// runtime names one of the ids returned by ListRuntimes.
func (s *Service) Create(
	ctx context.Context,
	functionID string,
	name string,
	execute []string,
	runtime string,
	opts *FunctionOptions,
) (*http.Response, error) {
	p := params.New().
		Set("functionId", params.String(functionID)).
		Set("name", params.String(name)).
		Set("execute", params.Strings(execute)).
		Set("runtime", params.String(runtime))

	p, err := opts.apply(p)
	if err != nil {
		return nil, err
	}

	return s.call(ctx, http.MethodPost, "/functions", p)
}

func (s *Service) ListRuntimes(ctx context.Context) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, "/functions/runtimes", params.New())
}

func (s *Service) Get(ctx context.Context, functionID string) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, functionPath(functionID), params.New())
}

func (s *Service) Update(
	ctx context.Context,
	functionID string,
	name string,
	execute []string,
	opts *FunctionOptions,
) (*http.Response, error) {
	p := params.New().
		Set("name", params.String(name)).
		Set("execute", params.Strings(execute))

	p, err := opts.apply(p)
	if err != nil {
		return nil, err
	}

	return s.call(ctx, http.MethodPut, functionPath(functionID), p)
}

func (s *Service) Delete(ctx context.Context, functionID string) (*http.Response, error) {
	return s.call(ctx, http.MethodDelete, functionPath(functionID), params.New())
}

// GetUsage reports execution statistics over rng (24h, 7d, 30d or 90d).
// An empty rng uses the server default.
func (s *Service) GetUsage(ctx context.Context, functionID, rng string) (*http.Response, error) {
	p := params.New().Set("range", params.NonEmpty(rng))

	return s.call(ctx, http.MethodGet, functionPath(functionID, "usage"), p)
}
