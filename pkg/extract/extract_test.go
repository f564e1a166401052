package extract

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/neurmill/toolrec/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockExtractorReturnsFixedFeatures(t *testing.T) {
	features, err := NewMockExtractor().ExtractFeatures(context.Background(), "/does/not/matter.step")
	require.NoError(t, err)
	require.Len(t, features, 3)

	hole, pocket, slot := features[0], features[1], features[2]

	assert.Equal(t, "Hole", hole.FeatureName)
	assert.Equal(t, 10.0, *hole.XPosition)
	assert.Equal(t, 20.0, *hole.YPosition)
	assert.Equal(t, 0.0, *hole.ZPosition)
	assert.Equal(t, 5.0, *hole.Radius)
	assert.Equal(t, 15.0, *hole.Depth)
	assert.Nil(t, hole.Width)

	assert.Equal(t, "Pocket", pocket.FeatureName)
	assert.Equal(t, 50.0, *pocket.XPosition)
	assert.Equal(t, 60.0, *pocket.YPosition)
	assert.Equal(t, 30.0, *pocket.Width)
	assert.Equal(t, 20.0, *pocket.Height)
	assert.Equal(t, 10.0, *pocket.Depth)
	assert.Nil(t, pocket.Radius)

	assert.Equal(t, "Slot", slot.FeatureName)
	assert.Equal(t, 100.0, *slot.XPosition)
	assert.Equal(t, 80.0, *slot.YPosition)
	assert.Equal(t, 50.0, *slot.Width)
	assert.Equal(t, 8.0, *slot.Height)
	assert.Equal(t, 12.0, *slot.Depth)
}

func writeStepFile(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "part.step")
	require.NoError(t, os.WriteFile(path, []byte("ISO-10303-21;"), 0644))
	return path
}

func TestMLModuleExtractorMapsFeatures(t *testing.T) {
	var receivedName string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/parse", r.URL.Path)
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		_, _ = io.Copy(io.Discard, f)
		receivedName = hdr.Filename

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"features":[
			{"name":"Hole_1","type":"hole","x":10,"y":20,"z":0,"diameter":8.5,"depth":15},
			{"name":"Pocket_1","type":"pocket","x":100,"y":80,"z":0,"width":50,"length":60,"depth":25,"corner_radius":5},
			{"type":"chamfer","x":150,"y":150,"z":0,"length":30,"angle":45}
		],"metadata":{"units":"mm"}}`))
	}))
	defer srv.Close()

	features, err := NewMLModuleExtractor(srv.URL+"/").ExtractFeatures(context.Background(), writeStepFile(t))
	require.NoError(t, err)
	assert.Equal(t, "part.step", receivedName)
	require.Len(t, features, 3)

	assert.Equal(t, "Hole_1", features[0].FeatureName)
	assert.Equal(t, 4.25, *features[0].Radius)
	assert.Equal(t, 15.0, *features[0].Depth)

	assert.Equal(t, 50.0, *features[1].Width)
	assert.Equal(t, 60.0, *features[1].Height)
	assert.Equal(t, 5.0, *features[1].Radius)

	assert.Equal(t, "chamfer", features[2].FeatureName)
	assert.Equal(t, 45.0, *features[2].Angle)
	assert.Nil(t, features[2].Radius)
}

func TestMLModuleExtractorReportsModuleErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Error parsing file: bad header"}`))
	}))
	defer srv.Close()

	e := NewMLModuleExtractor(srv.URL)

	_, err := e.ExtractFeatures(context.Background(), writeStepFile(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMLModule))
	assert.Contains(t, err.Error(), "bad header")

	err = e.Health(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMLModule))
}

func TestFromConfig(t *testing.T) {
	e, err := FromConfig(config.NewMapConfig(map[string]string{}))
	require.NoError(t, err)
	assert.Equal(t, MockExtractorName, e.Name())

	_, err = FromConfig(config.NewMapConfig(map[string]string{"FEATURE_EXTRACTOR": "ml"}))
	assert.Error(t, err)

	e, err = FromConfig(config.NewMapConfig(map[string]string{
		"FEATURE_EXTRACTOR": "ml",
		"ML_MODULE_URL":     "http://localhost:5050",
	}))
	require.NoError(t, err)
	assert.Equal(t, MLModuleExtractorName, e.Name())

	_, err = FromConfig(config.NewMapConfig(map[string]string{"FEATURE_EXTRACTOR": "opencascade"}))
	assert.Error(t, err)
}
