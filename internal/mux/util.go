package mux

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"cardroom-server/pkg/holdem"
)

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if ct := r.Header.Get("Content-Type"); ct != "application/json" && ct != "text/json" {
		writeJSONError(w, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}

// writeEngineError maps a game engine error onto an HTTP status code
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, holdem.ErrRoomNotFound):
		writeJSONError(w, http.StatusNotFound, nil)
	case errors.Is(err, holdem.ErrGameInProgress),
		errors.Is(err, holdem.ErrGameStarted),
		errors.Is(err, holdem.ErrGameResolved),
		errors.Is(err, holdem.ErrRoundNotReady),
		errors.Is(err, holdem.ErrWrongStreet),
		errors.Is(err, holdem.ErrNoCurrentGame),
		errors.Is(err, holdem.ErrNotEnoughPlayers),
		errors.Is(err, holdem.ErrAlreadySeated),
		errors.Is(err, holdem.ErrPlayerNotSeated),
		errors.Is(err, holdem.ErrDealerNotSeated):
		writeJSONError(w, http.StatusConflict, err)
	default:
		writeJSONError(w, http.StatusInternalServerError, err)
	}
}
