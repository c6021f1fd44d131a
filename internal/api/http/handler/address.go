package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/storefront-server/internal/logger"
	"github.com/dtroode/storefront-server/internal/model"
)

// AddressService defines customer address operations.
type AddressService interface {
	SaveAddress(ctx context.Context, accessToken string, params model.SaveAddressParams) (model.Address, error)
	ListAddresses(ctx context.Context, accessToken string) ([]model.Address, error)
	DeleteAddress(ctx context.Context, accessToken, addressID string) (model.Address, error)
	ListStates(ctx context.Context) ([]model.State, error)
}

// Address handles HTTP endpoints for addresses and states.
type Address struct {
	service        AddressService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAddress creates a new Address handler.
func NewAddress(service AddressService, contextManager model.ContextManager, logger *logger.Logger) *Address {
	return &Address{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Address) token(r *http.Request) string {
	token, _ := h.contextManager.GetTokenFromContext(r.Context())
	return token
}

// Save registers an address for the caller.
func (h *Address) Save(w http.ResponseWriter, r *http.Request) {
	var req saveAddressRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "malformed request body")
		return
	}

	address, err := h.service.SaveAddress(r.Context(), h.token(r), model.SaveAddressParams{
		FlatBuildingName: req.FlatBuildingName,
		Locality:         req.Locality,
		City:             req.City,
		Pincode:          req.Pincode,
		StateID:          req.StateUUID,
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, statusResponse{
		ID:     address.ID.String(),
		Status: "ADDRESS SUCCESSFULLY REGISTERED",
	})
}

// List returns the caller's addresses, newest first.
func (h *Address) List(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.service.ListAddresses(r.Context(), h.token(r))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	resp := addressListResponse{Addresses: make([]addressResponse, 0, len(addresses))}
	for _, a := range addresses {
		resp.Addresses = append(resp.Addresses, toAddressResponse(a))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Delete removes one of the caller's addresses.
func (h *Address) Delete(w http.ResponseWriter, r *http.Request) {
	address, err := h.service.DeleteAddress(r.Context(), h.token(r), chi.URLParam(r, "addressId"))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{
		ID:     address.ID.String(),
		Status: "ADDRESS DELETED SUCCESSFULLY",
	})
}

// ListStates returns the state dictionary.
func (h *Address) ListStates(w http.ResponseWriter, r *http.Request) {
	states, err := h.service.ListStates(r.Context())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	resp := statesListResponse{States: make([]stateResponse, 0, len(states))}
	for _, s := range states {
		resp.States = append(resp.States, toStateResponse(s))
	}

	writeJSON(w, http.StatusOK, resp)
}
