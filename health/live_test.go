package health_test

import (
	"testing"

	"github.com/andyle182810/gappwrite/health"
	"github.com/andyle182810/gappwrite/httpclient"
	"github.com/andyle182810/gappwrite/testutil"
	"github.com/stretchr/testify/require"
)

// Runs against a real server when APPWRITE_TEST_ENDPOINT, APPWRITE_TEST_PROJECT
// and APPWRITE_TEST_KEY are set.
func TestLive_Health(t *testing.T) {
	t.Parallel()

	endpoint := testutil.RequireEnv(t, "APPWRITE_TEST_ENDPOINT")
	project := testutil.RequireEnv(t, "APPWRITE_TEST_PROJECT")
	key := testutil.RequireEnv(t, "APPWRITE_TEST_KEY")

	client := httpclient.New(endpoint).SetProject(project).SetKey(key)

	type status struct {
		Status string `json:"status"`
	}

	ctx, _ := testutil.ContextWithTimeout(t)

	got, err := httpclient.DecodeJSON[status](health.New(client).Get(ctx))
	require.NoError(t, err)
	require.Equal(t, "pass", got.Status)
}
