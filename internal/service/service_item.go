// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/internal/store"
	"github.com/MKhiriev/items-api/internal/validators"
	"github.com/MKhiriev/items-api/models"
	"github.com/google/uuid"
)

type itemService struct {
	itemRepository store.ItemRepository
	validator      validators.Validator
	idGenerator    IDGenerator

	logger *logger.Logger
}

// NewItemService builds the [ItemService] over repo. Inputs are checked with
// validator and new items get their id from idGenerator.
func NewItemService(repo store.ItemRepository, validator validators.Validator, idGenerator IDGenerator, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: repo,
		validator:      validator,
		idGenerator:    idGenerator,
		logger:         logger,
	}
}

func (s *itemService) ListItems(ctx context.Context, session store.Session) ([]models.Item, error) {
	return s.itemRepository.List(ctx, session)
}

func (s *itemService) GetItem(ctx context.Context, session store.Session, name string) (models.Item, error) {
	return s.itemRepository.FindByName(ctx, session, name)
}

// CreateItem validates input and stores it under a fresh id.
func (s *itemService) CreateItem(ctx context.Context, session store.Session, input models.NewItemInput) (models.Item, error) {
	if err := s.validator.Validate(ctx, input); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	item := models.Item{
		ID:      s.idGenerator.Generate(),
		Name:    input.Name,
		Details: input.Details,
	}

	created, err := s.itemRepository.Create(ctx, session, item)
	if err != nil {
		return models.Item{}, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "*itemService.CreateItem").
		Stringer("item_id", created.ID).
		Msg("item created")
	return created, nil
}

// UpdateItem applies the non-nil fields of input to the item with the given
// id and returns the stored result. The id carried inside input is ignored;
// the caller resolves the target.
func (s *itemService) UpdateItem(ctx context.Context, session store.Session, id uuid.UUID, input models.UpdateItemInput) (models.Item, error) {
	if err := s.validator.Validate(ctx, input, validators.FieldName); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.itemRepository.Update(ctx, session, input.ToItemUpdate(id))
}

func (s *itemService) DeleteItem(ctx context.Context, session store.Session, name string) error {
	if err := s.itemRepository.DeleteByName(ctx, session, name); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Str("func", "*itemService.DeleteItem").
		Str("name", name).
		Msg("item deleted")
	return nil
}

// CheckDatabase performs a round trip to the database through session.
func (s *itemService) CheckDatabase(ctx context.Context, session store.Session) error {
	return s.itemRepository.Ping(ctx, session)
}
