// Package web expose phantom creation over HTTP: a posted scene document is
// replayed into a per-request working directory and the emitted artifacts
// are returned in the response.
package web

import (
	"net/http"

	"github.com/gorilla/mux"

	conf "github.com/voxphantom/voxphantom/config"
)

var log = conf.NamedLogger("web")

// NewRouter builds the service router.
func NewRouter(config *conf.Config) http.Handler {
	router := mux.NewRouter()

	router.Handle("/phantoms", &createPhantomHandler{config}).Methods(http.MethodPost)
	router.Handle("/scenes/validate", &validateSceneHandler{}).Methods(http.MethodPost)
	router.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return router
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
