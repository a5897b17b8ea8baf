package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"ok": false, "error": message})
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// pathID reads the record id from the request path. Slug-keyed entities
// register their mutating routes under :slug, so that name is accepted as
// a fallback.
func pathID(c *gin.Context) (uint, error) {
	if c.Param("id") != "" {
		return parseUintParam(c, "id")
	}
	return parseUintParam(c, "slug")
}

// flexInt accepts both JSON numbers and numeric strings, mirroring the
// loose integer coercion clients rely on for order fields.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid integer %q", raw)
	}
	*f = flexInt(n)
	return nil
}

func setString(fields map[string]any, column string, value *string) {
	if value != nil {
		fields[column] = strings.TrimSpace(*value)
	}
}

func setInt(fields map[string]any, column string, value *flexInt) {
	if value != nil {
		fields[column] = int(*value)
	}
}
