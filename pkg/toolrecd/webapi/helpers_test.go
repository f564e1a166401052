package webapi

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/neurmill/toolrec/pkg/tooldb/model"
	"github.com/neurmill/toolrec/pkg/tooldb/stor"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

// setupEchoContext creates a test Echo context with the given query and path parameters.
func setupEchoContext(method, target string, queryParams map[string]string, pathParams map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	req := httptest.NewRequest(method, target, nil)
	q := req.URL.Query()
	for key, value := range queryParams {
		q.Add(key, value)
	}
	req.URL.RawQuery = q.Encode()

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var names, values []string
	for name, value := range pathParams {
		names = append(names, name)
		values = append(values, value)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	return c, rec
}

// setupUploadContext creates a context for a multipart request with content sent under
// fieldName.
func setupUploadContext(t *testing.T, fieldName, filename string, content []byte) (echo.Context, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/cad-files", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

var (
	testMachines = []model.Machine{
		{ID: 1, Name: "Haas VF-2", MaxRPM: 10000, MaxFeedRate: 2000, MinToolDiameter: 3, MaxToolDiameter: 20},
		{ID: 2, Name: "Tiny Mill", MaxRPM: 5000, MaxFeedRate: 500, MinToolDiameter: 30, MaxToolDiameter: 40},
	}

	testTools = []model.Tool{
		{ID: 1, Name: "End Mill 10", Type: model.ToolTypeEndMill, Diameter: 10, FluteCount: intPtr(4), MaxRPM: intPtr(8000)},
		{ID: 2, Name: "End Mill 12", Type: model.ToolTypeEndMill, Diameter: 12, FluteCount: intPtr(3), MaxRPM: intPtr(9000)},
		{ID: 3, Name: "Ball End Mill 6", Type: model.ToolTypeBallEndMill, Diameter: 6, FluteCount: intPtr(2), MaxRPM: intPtr(12000)},
		{ID: 4, Name: "Drill 8", Type: model.ToolTypeDrill, Diameter: 8, FluteCount: intPtr(2), MaxRPM: intPtr(3000)},
	}
)

// newTestStors returns in-memory stors holding testMachines and testTools.
func newTestStors() (*stor.Stors, *stor.InMemoryCADFileStor) {
	fileStor := stor.NewInMemoryCADFileStor()
	machines := make([]model.Machine, len(testMachines))
	copy(machines, testMachines)
	tools := make([]model.Tool, len(testTools))
	copy(tools, testTools)

	return &stor.Stors{
		CADFileStor:    fileStor,
		CADFeatureStor: stor.NewInMemoryCADFeatureStor(fileStor),
		MachineStor:    stor.NewInMemoryMachineStor(machines),
		ToolStor:       stor.NewInMemoryToolStor(tools),
	}, fileStor
}
