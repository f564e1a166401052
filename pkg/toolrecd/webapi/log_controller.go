package webapi

import (
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/neurmill/toolrec/pkg/clog"
	"github.com/pkg/errors"
)

// LogController lets an operator change log levels and the log destination while the
// server runs. Log files can only be created in logDir.
type LogController struct {
	mu            sync.Mutex
	Levels        map[string]string `json:"levels"`
	CurrentOutput string            `json:"current_output"`
	logDir        string
}

func NewLogController(initialLevel, logDir string) *LogController {
	levels := make(map[string]string)
	for _, ctx := range clog.Contexts() {
		levels[ctx] = initialLevel
	}

	return &LogController{
		Levels:        levels,
		CurrentOutput: "stdout",
		logDir:        logDir,
	}
}

func (c *LogController) ShowLogging(ctx echo.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return ctx.JSON(http.StatusOK, c)
}

// SetLogLevel sets the level for one context, or for every context when none is given.
// The global context also sets the level for package level logging.
func (c *LogController) SetLogLevel(ctx echo.Context) error {
	var req struct {
		Context  string `json:"context"`
		LogLevel string `json:"log_level"`
	}

	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	contexts := clog.Contexts()
	if req.Context != "" {
		if _, ok := c.Levels[req.Context]; !ok {
			return errorResponse(ctx, http.StatusBadRequest, "Unknown logging context "+req.Context)
		}
		contexts = []string{req.Context}
	}

	for _, logCtx := range contexts {
		if err := clog.SetLevelFromString(logCtx, req.LogLevel); err != nil {
			err = errors.Wrapf(err, "invalid log level %s", req.LogLevel)
			return errorResponse(ctx, http.StatusBadRequest, err.Error())
		}
		c.Levels[logCtx] = req.LogLevel
	}

	return ctx.JSON(http.StatusOK, c)
}

// SetLogOutput sends all logging to stdout, stderr or a file in the log directory. Files
// are named without a directory.
func (c *LogController) SetLogOutput(ctx echo.Context) error {
	var req struct {
		LogOutput string `json:"log_output"`
	}

	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch req.LogOutput {
	case "stdout":
		clog.SetOutput(os.Stdout)
	case "stderr":
		clog.SetOutput(os.Stderr)
	default:
		f, err := c.openLogFile(req.LogOutput)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, err.Error())
		}
		clog.SetOutput(f)
	}

	c.CurrentOutput = req.LogOutput

	return ctx.JSON(http.StatusOK, c)
}

func (c *LogController) openLogFile(name string) (*os.File, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return nil, errors.Errorf("log output '%s' must be stdout, stderr or a file name in the log directory", name)
	}

	if err := os.MkdirAll(c.logDir, 0755); err != nil {
		return nil, errors.Wrapf(err, "unable to create log directory %s", c.logDir)
	}

	path := filepath.Join(c.logDir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open log output %s", path)
	}

	return f, nil
}
