package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/storefront-server/internal/apperr"
	"github.com/dtroode/storefront-server/internal/logger"
	"github.com/dtroode/storefront-server/internal/model"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var kindStatus = map[apperr.Kind]int{
	apperr.KindValidationFailed:     http.StatusBadRequest,
	apperr.KindWeakPassword:         http.StatusBadRequest,
	apperr.KindIncorrectOldPassword: http.StatusBadRequest,
	apperr.KindEmptyField:           http.StatusBadRequest,
	apperr.KindAuthenticationFailed: http.StatusUnauthorized,
	apperr.KindNotLoggedIn:          http.StatusUnauthorized,
	apperr.KindLoggedOut:            http.StatusUnauthorized,
	apperr.KindSessionExpired:       http.StatusUnauthorized,
	apperr.KindForbidden:            http.StatusForbidden,
	apperr.KindNotFound:             http.StatusNotFound,
	apperr.KindSignupRestricted:     http.StatusConflict,
}

// statusOf maps a business error kind to an HTTP status.
func statusOf(kind apperr.Kind) int {
	if status, ok := kindStatus[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func handleError(w http.ResponseWriter, l *logger.Logger, err error) {
	if e, ok := apperr.As(err); ok {
		writeJSON(w, statusOf(e.Kind), errorResponse{Code: e.Code, Message: e.Message})
		return
	}

	if errors.Is(err, model.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Code: "NOT_FOUND", Message: "resource not found"})
		return
	}

	l.Error("HTTP handler: unexpected error",
		"error", err.Error())
	writeJSON(w, http.StatusInternalServerError, errorResponse{Code: "INTERNAL", Message: "internal server error"})
}
