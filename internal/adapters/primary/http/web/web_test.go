package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)
	assert.NotNil(t, tmpl.Lookup("index.html"))
	assert.NotNil(t, tmpl.Lookup("apidocs.html"))

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "apidocs.html", map[string]string{"Title": "t", "SpecURL": "/apispec_1.json"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "/apispec_1.json")
}

func TestOpenAPI(t *testing.T) {
	doc, err := OpenAPI()
	require.NoError(t, err)
	assert.Equal(t, "2.0", doc["swagger"])

	paths, ok := doc["paths"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, paths, "/predict")

	defs := doc["definitions"].(map[string]interface{})
	req := defs["PredictRequest"].(map[string]interface{})
	assert.Len(t, req["required"], 10)
}
