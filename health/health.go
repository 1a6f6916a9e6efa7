// Package health reports the status of the server and its dependencies.
package health

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

func (s *Service) get(ctx context.Context, segments ...string) (*http.Response, error) {
	path := httpclient.Path(append([]string{"health"}, segments...)...)

	return s.client.Call(ctx, http.MethodGet, path, httpclient.JSONHeaders(), params.New())
}

func (s *Service) Get(ctx context.Context) (*http.Response, error) {
	return s.get(ctx)
}

func (s *Service) GetAntivirus(ctx context.Context) (*http.Response, error) {
	return s.get(ctx, "anti-virus")
}

func (s *Service) GetCache(ctx context.Context) (*http.Response, error) {
	return s.get(ctx, "cache")
}

func (s *Service) GetDB(ctx context.Context) (*http.Response, error) {
	return s.get(ctx, "db")
}

// GetQueueCertificates reports how many certificates wait to be issued.
func (s *Service) GetQueueCertificates(ctx context.Context) (*http.Response, error) {
	return s.get(ctx, "queue", "certificates")
}

func (s *Service) GetQueueFunctions(ctx context.Context) (*http.Response, error) {
	return s.get(ctx, "queue", "functions")
}

func (s *Service) GetQueueLogs(ctx context.Context) (*http.Response, error) {
	return s.get(ctx, "queue", "logs")
}

func (s *Service) GetQueueWebhooks(ctx context.Context) (*http.Response, error) {
	return s.get(ctx, "queue", "webhooks")
}

func (s *Service) GetStorageLocal(ctx context.Context) (*http.Response, error) {
	return s.get(ctx, "storage", "local")
}

func (s *Service) GetVersion(ctx context.Context) (*http.Response, error) {
	return s.get(ctx, "version")
}

// GetTime compares the server clock against a public time server.
func (s *Service) GetTime(ctx context.Context) (*http.Response, error) {
	return s.get(ctx, "time")
}
