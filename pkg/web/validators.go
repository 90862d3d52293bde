package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// ParseOptionalID reads an optional numeric query parameter (a category
// or brand filter). The second result reports whether the parameter was
// present, the third whether the request may proceed.
func ParseOptionalID(r *http.Request, w http.ResponseWriter, logger *slog.Logger, key string) (int64, bool, bool) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return 0, false, true
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		RespondError(w, logger, http.StatusBadRequest, fmt.Sprintf("Invalid %s number: %s", key, value))
		return 0, false, false
	}
	return id, true, true
}
