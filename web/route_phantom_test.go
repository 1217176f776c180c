package web

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	conf "github.com/voxphantom/voxphantom/config"
)

const tubeSceneJSON = `{
	"grid": {
		"dimensions": {"x": 4, "y": 4, "z": 4},
		"elementSizes": {"x": 1, "y": 1, "z": 1},
		"material": "Air"
	},
	"output": {"volume": "ignored", "rangeTable": "ignored"},
	"solids": [
		{"label": 1, "material": "Water",
		 "position": {"x": 0, "y": 0, "z": 0},
		 "geometry": {"type": "tube", "height": 4, "radius": 1}}
	]
}`

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	config := &conf.Config{BackendPort: 3001, WorkDir: t.TempDir(), LoggingLevel: "error"}
	return NewRouter(config)
}

func TestCreatePhantom(t *testing.T) {
	router := testRouter(t)

	request := httptest.NewRequest(http.MethodPost, "/phantoms", strings.NewReader(tubeSceneJSON))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	response := struct {
		Files     map[string]string `json:"files"`
		Materials int               `json:"materials"`
	}{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	assert.Equal(t, 2, response.Materials)
	require.Contains(t, response.Files, "phantom.mhd")
	require.Contains(t, response.Files, "phantom.raw")
	require.Contains(t, response.Files, "range_phantom.txt")

	rangeContent, err := base64.StdEncoding.DecodeString(response.Files["range_phantom.txt"])
	require.NoError(t, err)
	assert.Equal(t, "0 Air\n1 Water\n", string(rangeContent))

	payload, err := base64.StdEncoding.DecodeString(response.Files["phantom.raw"])
	require.NoError(t, err)
	assert.Len(t, payload, 4*4*4*2)

	header, err := base64.StdEncoding.DecodeString(response.Files["phantom.mhd"])
	require.NoError(t, err)
	assert.Contains(t, string(header), "DimSize = 4 4 4")
	assert.Contains(t, string(header), "ElementDataFile = phantom.raw")
}

func TestCreatePhantomInvalidScene(t *testing.T) {
	router := testRouter(t)

	// Negative tube radius is rejected before any voxel writes.
	invalid := strings.Replace(tubeSceneJSON, `"radius": 1`, `"radius": -1`, 1)
	request := httptest.NewRequest(http.MethodPost, "/phantoms", strings.NewReader(invalid))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreatePhantomMalformedBody(t *testing.T) {
	router := testRouter(t)

	request := httptest.NewRequest(http.MethodPost, "/phantoms", bytes.NewReader([]byte("{")))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestValidateScene(t *testing.T) {
	router := testRouter(t)

	request := httptest.NewRequest(http.MethodPost, "/scenes/validate", strings.NewReader(tubeSceneJSON))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"solids":1`)
}

func TestHealth(t *testing.T) {
	router := testRouter(t)

	request := httptest.NewRequest(http.MethodGet, "/health", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
