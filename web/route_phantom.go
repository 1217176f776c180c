package web

import (
	"encoding/base64"
	"errors"
	"net/http"
	"os"
	"path/filepath"

	conf "github.com/voxphantom/voxphantom/config"
	"github.com/voxphantom/voxphantom/pkg/phantom"
	"github.com/voxphantom/voxphantom/scene"
)

// phantomResponse carries the emitted artifacts, file name to base64
// encoded content.
type phantomResponse struct {
	Files     map[string]string `json:"files"`
	Materials int               `json:"materials"`
}

type createPhantomHandler struct {
	config *conf.Config
}

func (h *createPhantomHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	doc := scene.Scene{}
	if !decodeJSONRequest(w, r, &doc) {
		return
	}

	workDir, err := os.MkdirTemp(h.config.WorkDir, "phantom")
	if err != nil {
		log.Errorf("Unable to create working directory [%v]", err)
		writeJSONResponse(w, http.StatusInternalServerError, map[string]string{
			"error": "unable to create working directory",
		})
		return
	}
	defer func() {
		if removeErr := os.RemoveAll(workDir); removeErr != nil {
			log.Errorf("Unable to remove working directory %s [%v]", workDir, removeErr)
		}
	}()

	// Scene output paths are forced into the request working directory; the
	// artifacts travel back in the response body.
	doc.Output.Volume = filepath.Join(workDir, "phantom")
	doc.Output.RangeTable = filepath.Join(workDir, "range_phantom")

	manager := phantom.NewCreatorManager()
	if err := scene.Run(doc, manager); err != nil {
		writeJSONResponse(w, clientErrorStatus(err), map[string]string{"error": err.Error()})
		return
	}

	response := phantomResponse{
		Files:     map[string]string{},
		Materials: manager.Materials().Len(),
	}
	for _, name := range []string{"phantom.mhd", "phantom.raw", "range_phantom.txt"} {
		content, readErr := os.ReadFile(filepath.Join(workDir, name))
		if readErr != nil {
			log.Errorf("Unable to read emitted %s [%v]", name, readErr)
			writeJSONResponse(w, http.StatusInternalServerError, map[string]string{
				"error": "unable to read emitted artifacts",
			})
			return
		}
		response.Files[name] = base64.StdEncoding.EncodeToString(content)
	}

	writeJSONResponse(w, http.StatusOK, response)
}

// clientErrorStatus distinguishes scene caused failures from server side
// I/O trouble.
func clientErrorStatus(err error) int {
	if errors.Is(err, phantom.ErrIO) {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

type validateSceneHandler struct{}

func (h *validateSceneHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	doc := scene.Scene{}
	if !decodeJSONRequest(w, r, &doc) {
		return
	}
	writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"valid":  true,
		"solids": len(doc.Solids),
	})
}
