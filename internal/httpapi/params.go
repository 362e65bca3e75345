package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"simeis/internal/model"
)

// segments :
// Splits a request path into its non-empty '/'-delimited tokens, the
// same convention the dispatcher's route matching uses.
func segments(r *http.Request) []string {
	trimmed := strings.Trim(r.URL.Path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func parseUint64(s string) (uint64, *model.GameError) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, model.ErrInvalidArgument("id")
	}
	return v, nil
}

func parseFloat(s string) (float64, *model.GameError) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, model.ErrInvalidArgument("amount")
	}
	return v, nil
}

func parseInt(s string) (int, *model.GameError) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, model.ErrInvalidArgument("value")
	}
	return v, nil
}

// playerKeyFromRequest :
// Every authenticated command expects its bearer key in the `key`
// query parameter, matching the original's convention of keeping the
// key out of the path so it never ends up in server access logs' path
// component.
func playerKeyFromRequest(r *http.Request) (model.PlayerKey, *model.GameError) {
	raw := r.URL.Query().Get("key")
	if raw == "" {
		return model.PlayerKey{}, model.ErrNoPlayerKey()
	}
	return model.ParsePlayerKey(raw)
}
