package services

import (
	"context"
	"errors"

	"github.com/iota-uz/servicedesk/modules/requests/domain/aggregates/request"
	"github.com/iota-uz/servicedesk/pkg/eventbus"
	"github.com/iota-uz/servicedesk/pkg/serrors"
)

type RequestService struct {
	repo      request.Repository
	publisher eventbus.EventBus
}

func NewRequestService(repo request.Repository, publisher eventbus.EventBus) *RequestService {
	return &RequestService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *RequestService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *RequestService) GetAll(ctx context.Context) ([]request.Request, error) {
	return s.repo.GetAll(ctx)
}

func (s *RequestService) GetByID(ctx context.Context, id string) (request.Request, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RequestService) Find(ctx context.Context, params *request.FindParams) ([]request.Request, error) {
	return s.repo.Find(ctx, params)
}

func (s *RequestService) Create(ctx context.Context, data *request.CreateDTO) (request.Request, error) {
	if data == nil {
		return request.Request{}, errors.New("missing dto")
	}
	if errs, ok := data.Ok(); !ok {
		return request.Request{}, serrors.NewValidationError(errs)
	}

	created, err := s.repo.Create(ctx, data.ToEntity())
	if err != nil {
		return request.Request{}, err
	}

	s.publisher.Publish(request.NewCreatedEvent(ctx, *data, created))
	return created, nil
}

func (s *RequestService) Update(ctx context.Context, id string, data *request.UpdateDTO) (request.Request, error) {
	if data == nil {
		return request.Request{}, errors.New("missing dto")
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return request.Request{}, err
	}
	// The old status must be captured before the patch touches anything.
	oldStatus := existing.Status()

	data.Normalize()
	merged := data.Apply(existing)
	if errs, ok := request.ValidateEntity(merged); !ok {
		return request.Request{}, serrors.NewValidationError(errs)
	}

	updated, err := s.repo.Update(ctx, merged)
	if err != nil {
		return request.Request{}, err
	}

	s.publisher.Publish(request.NewUpdatedEvent(ctx, *data, updated))
	if updated.Status() != oldStatus {
		s.publisher.Publish(request.NewStatusChangedEvent(ctx, updated, oldStatus, updated.Status()))
	}
	return updated, nil
}

func (s *RequestService) Delete(ctx context.Context, id string) (request.Request, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return request.Request{}, err
	}

	s.publisher.Publish(request.NewDeletedEvent(ctx, deleted))
	return deleted, nil
}
