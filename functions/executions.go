package functions

import (
	"context"
	"net/http"

	"github.com/andyle182810/gappwrite/params"
)

func (s *Service) ListExecutions(
	ctx context.Context,
	functionID string,
	opts *params.ListOptions,
) (*http.Response, error) {
	p, err := opts.Params()
	if err != nil {
		return nil, err
	}

	return s.call(ctx, http.MethodGet, functionPath(functionID, "executions"), p)
}

// CreateExecution runs the function with data as its input. With async set
// the server answers before the execution finishes.
func (s *Service) CreateExecution(
	ctx context.Context,
	functionID string,
	data string,
	async bool,
) (*http.Response, error) {
	p := params.New().
		Set("data", params.NonEmpty(data)).
		Set("async", params.Flag(async))

	return s.call(ctx, http.MethodPost, functionPath(functionID, "executions"), p)
}

func (s *Service) GetExecution(ctx context.Context, functionID, executionID string) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, functionPath(functionID, "executions", executionID), params.New())
}
