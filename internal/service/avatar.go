package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/dtroode/storefront-server/internal/apperr"
	"github.com/dtroode/storefront-server/internal/model"
)

func avatarKey(customerID uuid.UUID) string {
	return "avatars/" + customerID.String()
}

// UploadAvatar stores the avatar of an authorized customer, replacing any
// previous one.
func (s *Customer) UploadAvatar(ctx context.Context, accessToken string, reader io.Reader, size int64, contentType string) (model.Customer, error) {
	customer, err := s.Authorize(ctx, accessToken)
	if err != nil {
		return model.Customer{}, err
	}

	if reader == nil || size == 0 {
		return model.Customer{}, apperr.NewErrAvatarEmpty()
	}

	s.logger.Debug("Customer service: uploading avatar",
		"customer_id", customer.ID,
		"size", size)

	if err := s.storage.Upload(ctx, avatarKey(customer.ID), reader, size, contentType); err != nil {
		s.logger.Error("Customer service: failed to upload avatar",
			"customer_id", customer.ID,
			"error", err.Error())
		return model.Customer{}, fmt.Errorf("failed to upload avatar: %w", err)
	}

	s.logger.Info("Customer service: avatar uploaded",
		"customer_id", customer.ID)

	return customer, nil
}

// DownloadAvatar opens the avatar of an authorized customer. The caller
// closes the reader.
func (s *Customer) DownloadAvatar(ctx context.Context, accessToken string) (io.ReadCloser, error) {
	customer, err := s.Authorize(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	if err := s.ensureAvatar(ctx, customer.ID); err != nil {
		return nil, err
	}

	reader, err := s.storage.Download(ctx, avatarKey(customer.ID))
	if err != nil {
		s.logger.Error("Customer service: failed to download avatar",
			"customer_id", customer.ID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to download avatar: %w", err)
	}

	return reader, nil
}

func (s *Customer) DeleteAvatar(ctx context.Context, accessToken string) (model.Customer, error) {
	customer, err := s.Authorize(ctx, accessToken)
	if err != nil {
		return model.Customer{}, err
	}

	if err := s.ensureAvatar(ctx, customer.ID); err != nil {
		return model.Customer{}, err
	}

	if err := s.storage.Delete(ctx, avatarKey(customer.ID)); err != nil {
		s.logger.Error("Customer service: failed to delete avatar",
			"customer_id", customer.ID,
			"error", err.Error())
		return model.Customer{}, fmt.Errorf("failed to delete avatar: %w", err)
	}

	s.logger.Info("Customer service: avatar deleted",
		"customer_id", customer.ID)

	return customer, nil
}

func (s *Customer) ensureAvatar(ctx context.Context, customerID uuid.UUID) error {
	exists, err := s.storage.Exists(ctx, avatarKey(customerID))
	if err != nil {
		return fmt.Errorf("failed to check avatar: %w", err)
	}
	if !exists {
		return apperr.NewErrAvatarNotFound()
	}
	return nil
}
