package api

import (
	"io"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormEncode(t *testing.T) {
	f := &Form{}
	f.AddField("name", "Organic Honey")
	f.AddField("parent", "")
	f.AddJSONField("variation", []map[string]any{{"weight": "500g", "price": 100, "pcs": 4}})
	f.AddFile("images", "a.png", []byte("png-a"))
	f.AddFile("images", "b.png", []byte("png-b"))

	body, contentType, err := f.Encode()
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	mr := multipart.NewReader(body, params["boundary"])
	form, err := mr.ReadForm(1 << 20)
	require.NoError(t, err)

	assert.Equal(t, []string{"Organic Honey"}, form.Value["name"])
	assert.Equal(t, []string{""}, form.Value["parent"])
	require.Len(t, form.Value["variation"], 1)
	assert.JSONEq(t, `[{"weight":"500g","price":100,"pcs":4}]`, form.Value["variation"][0])

	require.Len(t, form.File["images"], 2)
	assert.Equal(t, "a.png", form.File["images"][0].Filename)
	file, err := form.File["images"][1].Open()
	require.NoError(t, err)
	defer file.Close()
	content, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "png-b", string(content))
}

func TestFormEncodeEmpty(t *testing.T) {
	f := &Form{}
	body, contentType, err := f.Encode()
	require.NoError(t, err)
	assert.NotEmpty(t, contentType)
	assert.NotZero(t, body.Len())
}
