package web

import (
	"encoding/json"
	"net/http"
)

// decodeJSONRequest parses the request body into target. On failure it
// writes a 400 response and returns false.
func decodeJSONRequest(w http.ResponseWriter, r *http.Request, target interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		writeJSONResponse(w, http.StatusBadRequest, map[string]string{
			"error": "malformed request body: " + err.Error(),
		})
		return false
	}
	return true
}

func writeJSONResponse(w http.ResponseWriter, status int, response interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Errorf("Unable to encode response [%v]", err)
	}
}
