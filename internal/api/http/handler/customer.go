package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/dtroode/storefront-server/internal/apperr"
	"github.com/dtroode/storefront-server/internal/logger"
	"github.com/dtroode/storefront-server/internal/model"
)

// AccessTokenHeader carries the issued token on a successful login.
const AccessTokenHeader = "access-token"

// CustomerService defines customer account and session operations.
type CustomerService interface {
	Signup(ctx context.Context, params model.SignupParams) (model.Customer, error)
	Authenticate(ctx context.Context, contactNumber, password string) (model.Session, error)
	Logout(ctx context.Context, accessToken string) (model.Session, error)
	GetCustomer(ctx context.Context, accessToken string) (model.Customer, error)
	UpdatePassword(ctx context.Context, accessToken, oldPassword, newPassword string) (model.Customer, error)
	UploadAvatar(ctx context.Context, accessToken string, reader io.Reader, size int64, contentType string) (model.Customer, error)
	DownloadAvatar(ctx context.Context, accessToken string) (io.ReadCloser, error)
	DeleteAvatar(ctx context.Context, accessToken string) (model.Customer, error)
}

// Customer handles HTTP endpoints under /customer.
type Customer struct {
	service        CustomerService
	contextManager model.ContextManager
	maxAvatarBytes int64
	logger         *logger.Logger
}

// NewCustomer creates a new Customer handler.
func NewCustomer(service CustomerService, contextManager model.ContextManager, maxAvatarBytes int64, logger *logger.Logger) *Customer {
	return &Customer{
		service:        service,
		contextManager: contextManager,
		maxAvatarBytes: maxAvatarBytes,
		logger:         logger,
	}
}

func (h *Customer) token(r *http.Request) string {
	token, _ := h.contextManager.GetTokenFromContext(r.Context())
	return token
}

// Signup registers a new customer.
func (h *Customer) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "malformed request body")
		return
	}

	h.logger.Debug("Customer handler: processing signup request",
		"contact_number", req.ContactNumber)

	customer, err := h.service.Signup(r.Context(), model.SignupParams{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.EmailAddress,
		ContactNumber: req.ContactNumber,
		Password:      req.Password,
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, statusResponse{
		ID:     customer.ID.String(),
		Status: "CUSTOMER SUCCESSFULLY REGISTERED",
	})
}

// Login issues a session for Basic credentials and returns the token in the
// access-token header.
func (h *Customer) Login(w http.ResponseWriter, r *http.Request) {
	contactNumber, password, err := basicCredentials(r.Header.Get("Authorization"))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	h.logger.Debug("Customer handler: processing login request",
		"contact_number", contactNumber)

	session, err := h.service.Authenticate(r.Context(), contactNumber, password)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	w.Header().Set(AccessTokenHeader, session.AccessToken)
	writeJSON(w, http.StatusOK, loginResponse{
		customerResponse: toCustomerResponse(session.Customer),
		Message:          "LOGGED IN SUCCESSFULLY",
	})
}

// Logout terminates the caller's session.
func (h *Customer) Logout(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Logout(r.Context(), h.token(r))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, logoutResponse{
		ID:      session.ID.String(),
		Message: "LOGGED OUT SUCCESSFULLY",
	})
}

// Get returns the caller's profile.
func (h *Customer) Get(w http.ResponseWriter, r *http.Request) {
	customer, err := h.service.GetCustomer(r.Context(), h.token(r))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toCustomerResponse(customer))
}

// UpdatePassword replaces the caller's password.
func (h *Customer) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req updatePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "malformed request body")
		return
	}

	customer, err := h.service.UpdatePassword(r.Context(), h.token(r), req.OldPassword, req.NewPassword)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{
		ID:     customer.ID.String(),
		Status: "CUSTOMER PASSWORD UPDATED SUCCESSFULLY",
	})
}

// UploadAvatar stores the request body as the caller's avatar.
func (h *Customer) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxAvatarBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{
				Code:    "PAYLOAD_TOO_LARGE",
				Message: "avatar is too large",
			})
			return
		}
		writeBadRequest(w, "failed to read avatar")
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" && len(body) > 0 {
		contentType = http.DetectContentType(body)
	}

	customer, err := h.service.UploadAvatar(r.Context(), h.token(r), bytes.NewReader(body), int64(len(body)), contentType)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{
		ID:     customer.ID.String(),
		Status: "AVATAR UPDATED SUCCESSFULLY",
	})
}

// DownloadAvatar streams the caller's avatar.
func (h *Customer) DownloadAvatar(w http.ResponseWriter, r *http.Request) {
	reader, err := h.service.DownloadAvatar(r.Context(), h.token(r))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	defer reader.Close()

	body, err := io.ReadAll(reader)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(body))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// DeleteAvatar removes the caller's avatar.
func (h *Customer) DeleteAvatar(w http.ResponseWriter, r *http.Request) {
	customer, err := h.service.DeleteAvatar(r.Context(), h.token(r))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{
		ID:     customer.ID.String(),
		Status: "AVATAR DELETED SUCCESSFULLY",
	})
}

// basicCredentials decodes "Basic base64(contact:password)".
func basicCredentials(header string) (string, string, error) {
	header = strings.TrimSpace(header)
	if len(header) > 6 && strings.EqualFold(header[:6], "basic ") {
		header = strings.TrimSpace(header[6:])
	}

	decoded, err := base64.StdEncoding.DecodeString(header)
	if err != nil {
		return "", "", apperr.NewErrMalformedBasicAuth()
	}

	contactNumber, password, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return "", "", apperr.NewErrMalformedBasicAuth()
	}

	return contactNumber, password, nil
}
