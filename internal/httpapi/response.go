// Package httpapi exposes the simulation's command surface over HTTP,
// routed through the adapted dispatcher package, plus a websocket
// stream for syslog events.
package httpapi

import (
	"encoding/json"
	"net/http"

	"simeis/internal/model"
)

// apiResult :
// What a handler produces before it is folded into the wire envelope:
// either a payload to merge into `{"error":"ok", ...}` or a game error
// to report as `{"error":msg,"type":kind}`.
type apiResult struct {
	payload map[string]interface{}
	err     *model.GameError
}

func ok(payload map[string]interface{}) apiResult {
	return apiResult{payload: payload}
}

func fail(err *model.GameError) apiResult {
	return apiResult{err: err}
}

// writeResult :
// Serializes an apiResult the way the original server does: success
// responses merge the handler's payload into `{"error":"ok"}`, failures
// report the error's message and kind name, and both always answer
// with HTTP 200 since the envelope itself carries the status.
func writeResult(w http.ResponseWriter, res apiResult) {
	w.Header().Set("Content-Type", "application/json")

	var body map[string]interface{}
	if res.err != nil {
		body = map[string]interface{}{
			"error": res.err.Error(),
			"type":  res.err.Kind().String(),
		}
	} else {
		body = map[string]interface{}{"error": "ok"}
		for k, v := range res.payload {
			body[k] = v
		}
	}

	_ = json.NewEncoder(w).Encode(body)
}
