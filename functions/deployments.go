package functions

import (
	"context"
	"net/http"

	"github.com/andyle182810/gappwrite/httpclient"
	"github.com/andyle182810/gappwrite/params"
)

func deploymentPath(functionID, deploymentID string, rest ...string) string {
	return functionPath(functionID, append([]string{"deployments", deploymentID}, rest...)...)
}

func (s *Service) ListDeployments(
	ctx context.Context,
	functionID string,
	opts *params.ListOptions,
) (*http.Response, error) {
	p, err := opts.Params()
	if err != nil {
		return nil, err
	}

	return s.call(ctx, http.MethodGet, functionPath(functionID, "deployments"), p)
}

// CreateDeployment uploads a gzipped code archive. entrypoint is the file
// inside the archive the runtime starts; activate makes the deployment live
// once its build succeeds.
func (s *Service) CreateDeployment(
	ctx context.Context,
	functionID string,
	entrypoint string,
	code *params.InputFile,
	activate bool,
) (*http.Response, error) {
	p := params.New().
		Set("entrypoint", params.String(entrypoint)).
		Set("code", params.File(code)).
		Set("activate", params.Bool(activate))

	return s.client.Call(
		ctx,
		http.MethodPost,
		functionPath(functionID, "deployments"),
		httpclient.MultipartHeaders(),
		p,
	)
}

func (s *Service) GetDeployment(ctx context.Context, functionID, deploymentID string) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, deploymentPath(functionID, deploymentID), params.New())
}

// UpdateDeployment makes deploymentID the active deployment.
func (s *Service) UpdateDeployment(ctx context.Context, functionID, deploymentID string) (*http.Response, error) {
	return s.call(ctx, http.MethodPatch, deploymentPath(functionID, deploymentID), params.New())
}

func (s *Service) DeleteDeployment(ctx context.Context, functionID, deploymentID string) (*http.Response, error) {
	return s.call(ctx, http.MethodDelete, deploymentPath(functionID, deploymentID), params.New())
}

func (s *Service) RetryBuild(ctx context.Context, functionID, deploymentID, buildID string) (*http.Response, error) {
	return s.call(ctx, http.MethodPost, deploymentPath(functionID, deploymentID, "builds", buildID), params.New())
}
