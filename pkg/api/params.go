package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/quillgate/quillgate/pkg/services"
)

// pathInt parses a numeric path parameter; a malformed value is a 400.
func pathInt(c *echo.Context, name string) (int, error) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil || n <= 0 {
		return 0, writeError(c, http.StatusBadRequest, services.CodeValidationFailed,
			"invalid "+name+" path parameter", "use the numeric resource id")
	}
	return n, nil
}

// queryInt parses an optional numeric query parameter, falling back to def.
func queryInt(c *echo.Context, name string, def int) int {
	if v := c.QueryParam(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

// queryBool reports whether an optional boolean query parameter is set.
func queryBool(c *echo.Context, name string) bool {
	v, _ := strconv.ParseBool(c.QueryParam(name))
	return v
}

// queryTime parses an optional RFC 3339 query parameter; a malformed value
// is a 400 rather than a silently ignored filter.
func queryTime(c *echo.Context, name, code string) (time.Time, error) {
	v := c.QueryParam(name)
	if v == "" {
		return time.Time{}, nil
	}
	ts, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, writeError(c, http.StatusBadRequest, code,
			"invalid "+name+" query parameter", "use an RFC 3339 timestamp")
	}
	return ts, nil
}

func bindJSON(c *echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return writeError(c, http.StatusBadRequest, services.CodeValidationFailed,
			"malformed request body", "send a JSON body matching the documented shape")
	}
	return nil
}
