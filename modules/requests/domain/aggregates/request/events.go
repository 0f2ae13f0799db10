package request

import "context"

type CreatedEvent struct {
	Data   CreateDTO
	Result Request
}

func NewCreatedEvent(_ context.Context, data CreateDTO, result Request) *CreatedEvent {
	return &CreatedEvent{
		Data:   data,
		Result: result,
	}
}

type UpdatedEvent struct {
	Data   UpdateDTO
	Result Request
}

func NewUpdatedEvent(_ context.Context, data UpdateDTO, result Request) *UpdatedEvent {
	return &UpdatedEvent{
		Data:   data,
		Result: result,
	}
}

// StatusChangedEvent fires only when an update actually changed the status
// value; OldStatus is captured before the patch is applied.
type StatusChangedEvent struct {
	Result    Request
	OldStatus Status
	NewStatus Status
}

func NewStatusChangedEvent(_ context.Context, result Request, oldStatus, newStatus Status) *StatusChangedEvent {
	return &StatusChangedEvent{
		Result:    result,
		OldStatus: oldStatus,
		NewStatus: newStatus,
	}
}

type DeletedEvent struct {
	Result Request
}

func NewDeletedEvent(_ context.Context, result Request) *DeletedEvent {
	return &DeletedEvent{
		Result: result,
	}
}
