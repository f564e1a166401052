package extract

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

var ErrMLModule = errors.New("ml module")

// ErrorResponse is the JSON the ML module replies with when a call fails.
type ErrorResponse struct {
	Error string `json:"error"`
}

func toErrorFromResponse(resp *resty.Response) error {
	var errorResponse ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errorResponse); err != nil || errorResponse.Error == "" {
		return errors.Join(ErrMLModule, fmt.Errorf("(HTTP Status: %d)- %s", resp.StatusCode(), resp.Status()))
	}

	return errors.Join(ErrMLModule, fmt.Errorf("(HTTP Status: %d)- %s", resp.StatusCode(), errorResponse.Error))
}
