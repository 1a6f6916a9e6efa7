package params_test

import (
	"encoding/json"
	"io"
	"math"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andyle182810/gappwrite/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_SetKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	p := params.New().
		Set("b", params.Int(1)).
		Set("a", params.Int(2)).
		Set("b", params.Int(3))

	require.Equal(t, []string{"b", "a"}, p.Keys())

	v, ok := p.Get("b")
	require.True(t, ok)
	require.Equal(t, params.Int(3), v)
}

func TestParams_SetNullRemovesKey(t *testing.T) {
	t.Parallel()

	p := params.New().
		Set("name", params.String("x")).
		Set("name", params.Null()).
		Set("empty", params.NonEmpty("")).
		Set("list", params.Strings(nil))

	require.Equal(t, 0, p.Len())
	require.Equal(t, params.New(), p)
}

func TestParams_NilIsEmpty(t *testing.T) {
	t.Parallel()

	var p *params.Params

	require.Equal(t, 0, p.Len())

	query, err := p.Encode()
	require.NoError(t, err)
	require.Empty(t, query)
}

func TestParams_Encode(t *testing.T) {
	t.Parallel()

	p := params.New().
		Set("a", params.Int(1)).
		Set("b", params.List(params.Int(2), params.Int(3)))

	query, err := p.Encode()
	require.NoError(t, err)
	require.Equal(t, "a=1&b[]=2&b[]=3", query)

	values, err := url.ParseQuery(query)
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, values["a"])
	require.Equal(t, []string{"2", "3"}, values["b[]"])
}

func TestParams_EncodeEscapesComponents(t *testing.T) {
	t.Parallel()

	p := params.New().
		Set("url", params.String("https://example.com/?a=b&c=d")).
		Set("name", params.String("Jane Doe")).
		Set("download", params.Bool(true)).
		Set("opacity", params.Float(0.5))

	query, err := p.Encode()
	require.NoError(t, err)
	require.Equal(t, "url=https%3A%2F%2Fexample.com%2F%3Fa%3Db%26c%3Dd&name=Jane+Doe&download=true&opacity=0.5", query)
}

func TestParams_EncodeIsDeterministic(t *testing.T) {
	t.Parallel()

	build := func() string {
		p := params.New().
			Set("search", params.String("x")).
			Set("limit", params.Int(25)).
			Set("queries", params.Strings([]string{"q1", "q2"}))

		query, err := p.Encode()
		require.NoError(t, err)

		return query
	}

	require.Equal(t, build(), build())
}

func TestParams_EncodeRejectsFiles(t *testing.T) {
	t.Parallel()

	p := params.New().Set("file", params.File(params.FileFromReader("a.txt", strings.NewReader("x"))))

	_, err := p.Encode()
	require.ErrorIs(t, err, params.ErrInvalidParam)
}

func TestParams_MarshalJSON(t *testing.T) {
	t.Parallel()

	prefs := params.New().
		Set("Theme", params.String("dark")).
		Set("fontSize", params.Int(14))

	p := params.New().
		Set("userId", params.String("u1")).
		Set("IDCard", params.String("123")).
		Set("prefs", params.Object(prefs)).
		Set("roles", params.Strings([]string{"owner"})).
		Set("order", params.Enum(params.OrderDesc)).
		Set("ratio", params.Float(1.25)).
		Set("enabled", params.Bool(false))

	data, err := json.Marshal(p)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"userId": "u1",
		"idCard": "123",
		"prefs": {"theme": "dark", "fontSize": 14},
		"roles": ["owner"],
		"order": "DESC",
		"ratio": 1.25,
		"enabled": false
	}`, string(data))
	require.True(t, strings.HasPrefix(string(data), `{"userId":"u1","idCard"`))
}

func TestParams_MarshalJSONRejectsFiles(t *testing.T) {
	t.Parallel()

	p := params.New().Set("code", params.File(params.FileFromPath("/tmp/code.tar.gz")))

	_, err := json.Marshal(p)
	require.ErrorIs(t, err, params.ErrInvalidParam)
}

func TestParams_FormFields(t *testing.T) {
	t.Parallel()

	file := params.FileFromReader("photo.png", strings.NewReader("png"))

	p := params.New().
		Set("fileId", params.String("f1")).
		Set("file", params.File(file)).
		Set("read", params.Strings([]string{"role:all", "user:1"})).
		Set("activate", params.Bool(true))

	fields, err := p.FormFields()
	require.NoError(t, err)
	require.Equal(t, []params.FormField{
		{Name: "fileId", Value: "f1"},
		{Name: "file", File: file},
		{Name: "read[0]", Value: "role:all"},
		{Name: "read[1]", Value: "user:1"},
		{Name: "activate", Value: "true"},
	}, fields)
}

func TestCamelCase(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":         "",
		"userId":   "userId",
		"Name":     "name",
		"ID":       "id",
		"IDCard":   "idCard",
		"URLValue": "urlValue",
		"A1":       "a1",
	}

	for input, expected := range tests {
		assert.Equal(t, expected, params.CamelCase(input), input)
	}
}

func TestFromMap(t *testing.T) {
	t.Parallel()

	p, err := params.FromMap(map[string]any{
		"zeta":  1,
		"alpha": []any{"x", true, 2.5},
		"nested": map[string]any{
			"b": nil,
			"a": "y",
		},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "nested", "zeta"}, p.Keys())

	data, err := json.Marshal(p)
	require.NoError(t, err)
	require.JSONEq(t, `{"alpha":["x",true,2.5],"nested":{"a":"y"},"zeta":1}`, string(data))
}

func TestFromMap_RejectsUnsupportedValues(t *testing.T) {
	t.Parallel()

	_, err := params.FromMap(map[string]any{"ch": make(chan int)})
	require.ErrorIs(t, err, params.ErrInvalidParam)

	_, err = params.FromMap(map[string]any{"m": map[int]string{1: "a"}})
	require.ErrorIs(t, err, params.ErrInvalidParam)
}

func TestOf_UnsignedIntegers(t *testing.T) {
	t.Parallel()

	v, err := params.Of(uint64(7))
	require.NoError(t, err)
	require.Equal(t, params.KindInt, v.Kind())

	text, err := v.Text()
	require.NoError(t, err)
	require.Equal(t, "7", text)

	v, err = params.Of(uintptr(3))
	require.NoError(t, err)
	require.Equal(t, params.KindInt, v.Kind())

	v, err = params.Of(uint64(math.MaxUint64))
	require.NoError(t, err)
	require.Equal(t, params.KindFloat, v.Kind())
}

func TestParams_ZeroValueAcceptsSet(t *testing.T) {
	t.Parallel()

	var p params.Params

	p.Set("a", params.Int(1)).Set("b", params.Null())

	require.Equal(t, 1, p.Len())

	query, err := p.Encode()
	require.NoError(t, err)
	require.Equal(t, "a=1", query)
}

func TestInputFile_Open(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	file := params.FileFromPath(path)
	require.Equal(t, "notes.txt", file.Name)

	reader, err := file.Open()
	require.NoError(t, err)

	defer reader.Close()

	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.Equal(t, "hello", string(content))

	_, err = params.FileFromPath(filepath.Join(t.TempDir(), "missing")).Open()
	require.ErrorIs(t, err, params.ErrInvalidParam)
}

func TestListOptions_Params(t *testing.T) {
	t.Parallel()

	opts := &params.ListOptions{
		Search:          "jane",
		Limit:           10,
		CursorDirection: params.CursorAfter,
		Cursor:          "doc1",
		OrderType:       params.OrderDesc,
	}

	p, err := opts.Params()
	require.NoError(t, err)

	expected := params.New().
		Set("search", params.String("jane")).
		Set("limit", params.Int(10)).
		Set("cursor", params.String("doc1")).
		Set("cursorDirection", params.String("after")).
		Set("orderType", params.String("DESC"))
	require.Equal(t, expected, p)
}

func TestListOptions_NilAndPage(t *testing.T) {
	t.Parallel()

	var opts *params.ListOptions

	p, err := opts.Params()
	require.NoError(t, err)
	require.Equal(t, 0, p.Len())

	p, err = (&params.ListOptions{}).ForPage(4, 25).Params()
	require.NoError(t, err)
	require.Equal(t, params.New().Set("limit", params.Int(25)).Set("offset", params.Int(75)), p)
}

func TestListOptions_Invalid(t *testing.T) {
	t.Parallel()

	_, err := (&params.ListOptions{Limit: 500}).Params()
	require.ErrorIs(t, err, params.ErrInvalidParam)

	_, err = (&params.ListOptions{OrderType: "RANDOM"}).Params()
	require.ErrorIs(t, err, params.ErrInvalidParam)
}
