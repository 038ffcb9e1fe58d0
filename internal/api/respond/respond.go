// Package respond writes the JSON bodies shared by the handler and
// middleware layers.
package respond

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/rkp0912/Trello-quora/internal/domain"
)

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Error maps a coded domain error to its HTTP status and emits the
// {code, message} pair. Anything else is a 500 with no detail leaked.
func Error(w http.ResponseWriter, err error) {
	var de *domain.Error
	if errors.As(err, &de) {
		JSON(w, de.Status, de)
		return
	}
	log.Printf("ERROR [respond] unexpected error: %v", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
