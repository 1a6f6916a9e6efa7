package locale_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/andyle182810/gappwrite/httpclient"
	"github.com/andyle182810/gappwrite/locale"
	"github.com/andyle182810/gappwrite/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestService_Endpoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		call func(s *locale.Service, ctx context.Context) (*http.Response, error)
	}{
		{"/locale", (*locale.Service).Get},
		{"/locale/continents", (*locale.Service).GetContinents},
		{"/locale/countries", (*locale.Service).GetCountries},
		{"/locale/countries/eu", (*locale.Service).GetCountriesEU},
		{"/locale/countries/phones", (*locale.Service).GetCountriesPhones},
		{"/locale/currencies", (*locale.Service).GetCurrencies},
		{"/locale/languages", (*locale.Service).GetLanguages},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()

			caller := testutil.NewCaller("https://cloud.example.com/v1")

			resp, err := tc.call(locale.New(caller), t.Context())
			require.NoError(t, err)

			defer resp.Body.Close()

			caller.AssertCall(t, http.MethodGet, tc.path, httpclient.JSONHeaders(), nil)
		})
	}
}

func TestService_SendsLocaleHeader(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, http.StatusOK, `{"total":1,"continents":[{"name":"Europa","code":"EU"}]}`)
	client := httpclient.New(server.URL, httpclient.WithLogger(zerolog.Nop()))
	client.SetLocale("de")

	resp, err := locale.New(client).GetContinents(t.Context())
	require.NoError(t, err)

	defer resp.Body.Close()

	req := server.Last(t)
	testutil.AssertRequest(t, req, http.MethodGet, "/locale/continents")
	testutil.AssertHeader(t, req, httpclient.HeaderLocale, "de")
}
