package delivery

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/ensmetadata/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
}

// MakeJsonResp wraps data into a JsonResponse. Errors of the domain taxonomy
// override status with their own status hint.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		var derr *domain.Error
		if errors.As(err, &derr) {
			status = domain.StatusOf(err)
			data = ErrorResponse{Message: derr.Message, Kind: string(derr.Kind)}
		} else {
			data = ErrorResponse{Message: err.Error()}
		}
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}

// MakeRawJsonResp serves documents consumed verbatim, like token metadata,
// without the JsonResponse envelope.
func MakeRawJsonResp(c echo.Context, data interface{}) error {
	if raw, ok := data.(json.RawMessage); ok {
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, raw)
	}
	return c.JSON(http.StatusOK, data)
}

// MakeBlobResp serves image bytes.
func MakeBlobResp(c echo.Context, contentType string, data []byte) error {
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	return c.Blob(http.StatusOK, contentType, data)
}
