// Package locale serves localization data: the caller's detected location
// and lists of countries, continents, currencies and languages.
package locale

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

func (s *Service) get(ctx context.Context, path string) (*http.Response, error) {
	return s.client.Call(ctx, http.MethodGet, path, httpclient.JSONHeaders(), params.New())
}

// Get returns the location detected from the caller's IP address, in the
// language set with SetLocale.
func (s *Service) Get(ctx context.Context) (*http.Response, error) {
	return s.get(ctx, "/locale")
}

func (s *Service) GetContinents(ctx context.Context) (*http.Response, error) {
	return s.get(ctx, "/locale/continents")
}

func (s *Service) GetCountries(ctx context.Context) (*http.Response, error) {
	return s.get(ctx, "/locale/countries")
}

func (s *Service) GetCountriesEU(ctx context.Context) (*http.Response, error) {
	return s.get(ctx, "/locale/countries/eu")
}

func (s *Service) GetCountriesPhones(ctx context.Context) (*http.Response, error) {
	return s.get(ctx, "/locale/countries/phones")
}

func (s *Service) GetCurrencies(ctx context.Context) (*http.Response, error) {
	return s.get(ctx, "/locale/currencies")
}

func (s *Service) GetLanguages(ctx context.Context) (*http.Response, error) {
	return s.get(ctx, "/locale/languages")
}
