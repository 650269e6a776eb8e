// Package respond writes the JSON envelopes returned by the HTTP API.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

type success struct {
	Result any `json:"result"`
}

type failure struct {
	Error string `json:"error"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to write response")
	}
}

// OK writes {"result": data} with 200.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, success{Result: data})
}

// Created writes {"result": data} with 201.
func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, success{Result: data})
}

// Accepted writes {"result": data} with 202.
func Accepted(w http.ResponseWriter, data any) {
	JSON(w, http.StatusAccepted, success{Result: data})
}

// Fail writes {"error": err} with status.
func Fail(w http.ResponseWriter, status int, err error) {
	JSON(w, status, failure{Error: err.Error()})
}
