// Package mocks provides mock implementations for testing the career-fair UI services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the
// port interfaces. The mocks are generated using go:generate directives and provide
// a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockAPI := mocks.NewMockAuthenticator(ctrl)
//	mockAPI.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return("token", nil)
package mocks

// Generate mock for Authenticator interface from internal/ports.
// This creates MockAuthenticator with methods: Authenticate, Register.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=authenticator_mock.go github.com/campuskit/careerfair-ui/internal/ports Authenticator

// Generate mock for SessionStore interface from internal/ports.
// This creates MockSessionStore with methods: Save, Get, Delete.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_store_mock.go github.com/campuskit/careerfair-ui/internal/ports SessionStore

// Generate mock for EventsAPI interface from internal/ports.
// This creates MockEventsAPI with methods: ListEvents, CreateEvent, AttendEvent.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=events_api_mock.go github.com/campuskit/careerfair-ui/internal/ports EventsAPI
