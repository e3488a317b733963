package api

import (
	"net/http"

	"cricketscrapper/scrapeerr"

	"github.com/bytedance/sonic"
)

type errorBody struct {
	Error string `json:"error"`
}

// failure decides what a route reports when its operation fails. An empty
// message means the error text is used; a zero status means the upstream
// status is used when known.
type failure struct {
	message string
	status  int
}

var (
	upstreamFailure = failure{}
	squadsFailure   = failure{message: "Server error", status: http.StatusInternalServerError}
	factsFailure    = failure{message: "Failed to fetch match information"}
	newsFailure     = failure{message: "Internal Server Error", status: http.StatusInternalServerError}
)

func (f failure) resolve(err error) (int, string) {
	status := f.status
	if status == 0 {
		status = scrapeerr.StatusCode(err)
	}
	message := f.message
	if message == "" {
		message = err.Error()
	}
	return status, message
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Error: message})
}
