package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/campuskit/careerfair-ui/internal/domain/model"
	"github.com/campuskit/careerfair-ui/internal/ports"
)

// EventService wraps the upstream events API and implements the table
// behavior the UI needs: free-text search, type filtering, and sorting.
// The upstream returns the full listing; shaping happens here.
type EventService struct {
	api ports.EventsAPI
}

// NewEventService constructs a new EventService.
func NewEventService(api ports.EventsAPI) *EventService {
	return &EventService{api: api}
}

// List fetches events with the credential and applies filtering and ordering.
func (s *EventService) List(ctx context.Context, token string, opts model.EventListOptions) ([]model.Event, error) {
	events, err := s.api.ListEvents(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	filtered := events[:0:0]
	for _, e := range events {
		if opts.Type != nil && e.EventType != *opts.Type {
			continue
		}
		if !e.Matches(opts.Q) {
			continue
		}
		filtered = append(filtered, e)
	}

	sortEvents(filtered, opts.Sort, opts.Dir)
	return filtered, nil
}

// Create relays an event creation to the upstream API.
func (s *EventService) Create(ctx context.Context, token string, req model.CreateEventRequest) error {
	return s.api.CreateEvent(ctx, token, req)
}

// Attend signs the student up for an event and returns the upstream message.
func (s *EventService) Attend(ctx context.Context, token string, eventID int64) (string, error) {
	return s.api.AttendEvent(ctx, token, eventID)
}

// sortEvents orders events in place. Unknown sort fields fall back to the
// date ordering so a hand-edited query string cannot break the page.
func sortEvents(events []model.Event, field, dir string) {
	desc := strings.EqualFold(dir, "desc")

	var less func(a, b model.Event) bool
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "name":
		less = func(a, b model.Event) bool {
			return strings.ToLower(a.EventName) < strings.ToLower(b.EventName)
		}
	case "capacity":
		less = func(a, b model.Event) bool { return a.Capacity < b.Capacity }
	case "attendees":
		less = func(a, b model.Event) bool { return a.NumAttendees < b.NumAttendees }
	default:
		less = func(a, b model.Event) bool { return a.Date().Before(b.Date()) }
	}

	sort.SliceStable(events, func(i, j int) bool {
		if desc {
			return less(events[j], events[i])
		}
		return less(events[i], events[j])
	})
}
