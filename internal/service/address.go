package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/storefront-server/internal/apperr"
	"github.com/dtroode/storefront-server/internal/logger"
	"github.com/dtroode/storefront-server/internal/model"
	"github.com/dtroode/storefront-server/internal/validate"
)

type Address struct {
	addressStore model.AddressStore
	stateStore   model.StateStore
	authorizer   model.Authorizer
	transactor   model.Transactor
	logger       *logger.Logger
	now          func() time.Time
}

func NewAddress(
	addressStore model.AddressStore,
	stateStore model.StateStore,
	authorizer model.Authorizer,
	transactor model.Transactor,
	logger *logger.Logger,
) *Address {
	return &Address{
		addressStore: addressStore,
		stateStore:   stateStore,
		authorizer:   authorizer,
		transactor:   transactor,
		logger:       logger,
		now:          time.Now,
	}
}

// SaveAddress stores a new address and links it to the authorized customer.
func (s *Address) SaveAddress(ctx context.Context, accessToken string, params model.SaveAddressParams) (model.Address, error) {
	customer, err := s.authorizer.Authorize(ctx, accessToken)
	if err != nil {
		return model.Address{}, err
	}

	s.logger.Debug("Address service: saving address",
		"customer_id", customer.ID)

	if !validate.AddressFieldsPresent(params) {
		return model.Address{}, apperr.NewErrAddressFieldsEmpty()
	}
	if !validate.PincodeValid(params.Pincode) {
		return model.Address{}, apperr.NewErrInvalidPincode()
	}

	stateID, err := uuid.Parse(params.StateID)
	if err != nil {
		return model.Address{}, apperr.NewErrStateNotFound()
	}

	var saved model.Address
	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		state, err := s.stateStore.GetByID(ctx, stateID)
		if errors.Is(err, model.ErrNotFound) {
			return apperr.NewErrStateNotFound()
		}
		if err != nil {
			return fmt.Errorf("failed to get state by id: %w", err)
		}

		saved, err = s.addressStore.Create(ctx, model.Address{
			ID:               uuid.New(),
			FlatBuildingName: params.FlatBuildingName,
			Locality:         params.Locality,
			City:             params.City,
			Pincode:          params.Pincode,
			State:            state,
			CreatedAt:        s.now(),
		})
		if err != nil {
			return fmt.Errorf("failed to create address: %w", err)
		}

		if err := s.addressStore.LinkToCustomer(ctx, customer.ID, saved.ID); err != nil {
			return fmt.Errorf("failed to link address: %w", err)
		}

		return nil
	})
	if err != nil {
		if apperr.KindOf(err) == apperr.KindUnknown {
			s.logger.Error("Address service: failed to save address",
				"customer_id", customer.ID,
				"error", err.Error())
		}
		return model.Address{}, err
	}

	s.logger.Info("Address service: address saved",
		"customer_id", customer.ID,
		"address_id", saved.ID)

	return saved, nil
}

// ListAddresses returns the authorized customer's addresses, newest first.
func (s *Address) ListAddresses(ctx context.Context, accessToken string) ([]model.Address, error) {
	customer, err := s.authorizer.Authorize(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	addresses, err := s.addressStore.ListByCustomer(ctx, customer.ID)
	if err != nil {
		s.logger.Error("Address service: failed to list addresses",
			"customer_id", customer.ID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	return addresses, nil
}

// DeleteAddress removes an address owned by the authorized customer and
// returns what was deleted.
func (s *Address) DeleteAddress(ctx context.Context, accessToken, addressID string) (model.Address, error) {
	customer, err := s.authorizer.Authorize(ctx, accessToken)
	if err != nil {
		return model.Address{}, err
	}

	if addressID == "" {
		return model.Address{}, apperr.NewErrAddressIDEmpty()
	}

	id, err := uuid.Parse(addressID)
	if err != nil {
		return model.Address{}, apperr.NewErrAddressNotFound()
	}

	s.logger.Debug("Address service: deleting address",
		"customer_id", customer.ID,
		"address_id", id)

	var deleted model.Address
	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		address, err := s.addressStore.GetByID(ctx, id)
		if errors.Is(err, model.ErrNotFound) {
			return apperr.NewErrAddressNotFound()
		}
		if err != nil {
			return fmt.Errorf("failed to get address by id: %w", err)
		}

		ownerID, err := s.addressStore.GetOwnerID(ctx, id)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("failed to get address owner: %w", err)
		}
		// Unlinked addresses belong to brands.
		if ownerID != customer.ID {
			return apperr.NewErrAddressForbidden()
		}

		if err := s.addressStore.Delete(ctx, id); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return apperr.NewErrAddressNotFound()
			}
			return fmt.Errorf("failed to delete address: %w", err)
		}

		deleted = address
		return nil
	})
	if err != nil {
		if apperr.KindOf(err) == apperr.KindUnknown {
			s.logger.Error("Address service: failed to delete address",
				"customer_id", customer.ID,
				"address_id", id,
				"error", err.Error())
		}
		return model.Address{}, err
	}

	s.logger.Info("Address service: address deleted",
		"customer_id", customer.ID,
		"address_id", id)

	return deleted, nil
}

// ListStates returns every state ordered by name.
func (s *Address) ListStates(ctx context.Context) ([]model.State, error) {
	states, err := s.stateStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}

	return states, nil
}
