package ports

import (
	"context"

	"github.com/campuskit/careerfair-ui/internal/domain/model"
)

// EventsAPI exposes the event operations of the external collaborator.
// Every call carries the session's bearer credential; authorization for
// privileged operations is enforced upstream, not here.
type EventsAPI interface {
	// ListEvents fetches all events visible to the credential.
	ListEvents(ctx context.Context, token string) ([]model.Event, error)

	// CreateEvent creates a new event (admin credential required upstream).
	// Upstream field-level rejections are reported as a *ValidationError.
	CreateEvent(ctx context.Context, token string, req model.CreateEventRequest) error

	// AttendEvent signs the credential's student up for an event and returns
	// the upstream confirmation message.
	AttendEvent(ctx context.Context, token string, eventID int64) (string, error)
}
