package app_test

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andyle182810/gappwrite/cmd/appwrite/app"
	"github.com/andyle182810/gappwrite/httpclient"
	"github.com/andyle182810/gappwrite/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "appwrite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: off\n"), 0o600))

	return path
}

func run(t *testing.T, server *testutil.Server, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := app.NewAppwriteCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{
		"--config", emptyConfig(t),
		"--endpoint", server.URL,
		"--project", "p1",
	}, args...))

	err := cmd.ExecuteContext(t.Context())

	return stdout.String(), stderr.String(), err
}

func TestHealth(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, http.StatusOK, `{"status":"pass"}`)

	out, _, err := run(t, server, "health", "db")
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"status\": \"pass\"\n}\n", out)

	req := server.Last(t)
	testutil.AssertRequest(t, req, http.MethodGet, "/health/db")
	testutil.AssertHeader(t, req, httpclient.HeaderProject, "p1")
}

func TestHealth_UnknownCheck(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, http.StatusOK, `{}`)

	_, _, err := run(t, server, "health", "disk")
	require.ErrorContains(t, err, `unknown health check "disk"`)
	assert.Empty(t, server.Requests())
}

func TestLocale_SetsLanguage(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, http.StatusOK, `{"total":0,"countries":[]}`)

	_, _, err := run(t, server, "locale", "countries", "--language", "de")
	require.NoError(t, err)

	req := server.Last(t)
	testutil.AssertRequest(t, req, http.MethodGet, "/locale/countries")
	testutil.AssertHeader(t, req, httpclient.HeaderLocale, "de")
}

func TestUsersList(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, http.StatusOK, `{"total":0,"users":[]}`)

	_, _, err := run(t, server, "--key", "k1", "users", "list", "--search", "jane", "--limit", "5")
	require.NoError(t, err)

	req := server.Last(t)
	testutil.AssertRequest(t, req, http.MethodGet, "/users")
	testutil.AssertHeader(t, req, httpclient.HeaderKey, "k1")
	assert.Equal(t, "search=jane&limit=5", req.RawQuery)
}

func TestUsersList_InvalidLimit(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, http.StatusOK, `{}`)

	_, _, err := run(t, server, "users", "list", "--limit", "500")
	require.Error(t, err)
	assert.Empty(t, server.Requests())
}

func TestUsersCreate(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, http.StatusCreated, `{"$id":"u1"}`)

	_, _, err := run(t, server, "users", "create", "jane@example.com", "secret123", "--name", "Jane")
	require.NoError(t, err)

	req := server.Last(t)
	testutil.AssertRequest(t, req, http.MethodPost, "/users")
	testutil.AssertJSONBody(t, req,
		`{"userId":"unique()","email":"jane@example.com","password":"secret123","name":"Jane"}`)
}

func TestUsersCreate_InvalidID(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, http.StatusCreated, `{}`)

	_, _, err := run(t, server, "users", "create", "jane@example.com", "secret123", "--id", "_bad")
	require.Error(t, err)
	assert.Empty(t, server.Requests())
}

func TestUsersDelete(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, http.StatusNoContent, ``)

	out, _, err := run(t, server, "users", "delete", "u1")
	require.NoError(t, err)

	assert.Equal(t, "deleted u1\n", out)
	testutil.AssertRequest(t, server.Last(t), http.MethodDelete, "/users/u1")
}

func TestUsersGet_ServiceError(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, http.StatusNotFound, `{"message":"User not found","code":404}`)

	_, _, err := run(t, server, "users", "get", "missing")
	require.ErrorIs(t, err, httpclient.ErrNotFound)
	require.ErrorContains(t, err, "User not found")
}

func TestStorageUpload(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, http.StatusCreated, `{"$id":"f1"}`)

	path := filepath.Join(t.TempDir(), "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o600))

	_, _, err := run(t, server, "storage", "upload", "docs", path, "--id", "f1", "--read", "role:all")
	require.NoError(t, err)

	req := server.Last(t)
	testutil.AssertRequest(t, req, http.MethodPost, "/storage/buckets/docs/files")
	assert.True(t, strings.HasPrefix(req.Header.Get("Content-Type"), "multipart/form-data"))
	assert.Contains(t, string(req.Body), "hello world")
	assert.Contains(t, string(req.Body), `name="read[0]"`)
}

func TestStorageUpload_ManyFiles(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, http.StatusCreated, `{"$id":"f"}`)

	dir := t.TempDir()
	paths := []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt"), filepath.Join(dir, "c.txt")}

	for _, path := range paths {
		require.NoError(t, os.WriteFile(path, []byte(filepath.Base(path)), 0o600))
	}

	out, _, err := run(t, server, append([]string{"storage", "upload", "docs", "--parallel", "2"}, paths...)...)
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(out, `"$id": "f"`))
	require.Len(t, server.Requests(), 3)

	for _, req := range server.Requests() {
		testutil.AssertRequest(t, req, http.MethodPost, "/storage/buckets/docs/files")
		assert.Contains(t, string(req.Body), "unique()")
	}
}

func TestStorageUpload_CustomIDNeedsSingleFile(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, http.StatusCreated, `{}`)

	_, _, err := run(t, server, "storage", "upload", "docs", "a.txt", "b.txt", "--id", "f1")
	require.ErrorContains(t, err, "--id can only be set when uploading a single file")
	assert.Empty(t, server.Requests())
}

func TestStorageUpload_MissingFile(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, http.StatusCreated, `{}`)

	_, _, err := run(t, server, "storage", "upload", "docs", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorContains(t, err, "missing.txt")
	assert.Empty(t, server.Requests())
}

func TestStorageURL(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, http.StatusOK, `{}`)

	out, _, err := run(t, server, "storage", "url", "docs", "f1", "--kind", "preview", "--width", "100", "--output", "png")
	require.NoError(t, err)

	assert.Equal(t, server.URL+"/storage/buckets/docs/files/f1/preview?width=100&output=png\n", out)
	assert.Empty(t, server.Requests())

	_, _, err = run(t, server, "storage", "url", "docs", "f1", "--kind", "thumbnail")
	require.Error(t, err)
}

func TestFunctionsExecute(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, http.StatusCreated, `{"$id":"e1","status":"waiting"}`)

	_, _, err := run(t, server, "functions", "execute", "mailer", "--data", "hi", "--async")
	require.NoError(t, err)

	req := server.Last(t)
	testutil.AssertRequest(t, req, http.MethodPost, "/functions/mailer/executions")
	testutil.AssertJSONBody(t, req, `{"data":"hi","async":true}`)
}

func TestFunctionsDeploy_RequiresEntrypoint(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, http.StatusCreated, `{}`)

	_, _, err := run(t, server, "functions", "deploy", "mailer", "code.tar.gz")
	require.Error(t, err)
	assert.Empty(t, server.Requests())
}

func TestAvatarsQR(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, http.StatusOK, `{}`)

	out, _, err := run(t, server, "avatars", "qr", "hello world", "--size", "300")
	require.NoError(t, err)

	assert.Equal(t, server.URL+"/avatars/qr?text=hello+world&size=300\n", out)
}

func TestVersion(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, http.StatusOK, `{"version":"1.0.3"}`)

	out, _, err := run(t, server, "version", "--server")
	require.NoError(t, err)

	assert.Contains(t, out, httpclient.SDKVersion)
	assert.Contains(t, out, "Server:          1.0.3")
	testutil.AssertRequest(t, server.Last(t), http.MethodGet, "/health/version")
}

func TestMetricsFlag(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, http.StatusOK, `{"status":"pass"}`)

	_, errOut, err := run(t, server, "--metrics", "health")
	require.NoError(t, err)

	assert.Contains(t, errOut, `appwrite_client_calls_total{method="GET",status="200"} 1`)
}
