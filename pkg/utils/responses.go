package utils

import (
	"encoding/json"
	"net/http"
)

type ErrorResponse struct {
	Error  string `json:"error"`
	Errors any    `json:"errors,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
	User    any    `json:"user,omitempty"`
}

// ResponseJSON writes body as JSON with the given status code
func ResponseJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, body any) {
	ResponseJSON(w, http.StatusOK, body)
}

// returns 200 OK with {message, user}
func ResponseMessage(w http.ResponseWriter, message string, user any) {
	ResponseJSON(w, http.StatusOK, MessageResponse{Message: message, User: user})
}

// returns 201 Created with {message, user}
func ResponseCreated(w http.ResponseWriter, message string, user any) {
	ResponseJSON(w, http.StatusCreated, MessageResponse{Message: message, User: user})
}

// ------------- Error responses -------------

func ResponseError(w http.ResponseWriter, code int, message string, errors any) {
	ResponseJSON(w, code, ErrorResponse{Error: message, Errors: errors})
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	ResponseError(w, http.StatusBadRequest, message, errors)
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusUnauthorized, message, nil)
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusForbidden, message, nil)
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusConflict, message, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusInternalServerError, message, nil)
}
