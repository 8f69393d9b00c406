package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/campuskit/careerfair-ui/internal/domain/model"
	"github.com/campuskit/careerfair-ui/internal/mocks"
)

func eventFixtures() []model.Event {
	return []model.Event{
		{
			EventID:      1,
			EventName:    "Spring Career Fair",
			EventType:    model.EventTypeCareerFair,
			EventDate:    "2026-03-10",
			Location:     "Main Hall",
			Capacity:     100,
			NumAttendees: 40,
		},
		{
			EventID:      2,
			EventName:    "Alumni Networking Night",
			EventType:    model.EventTypeNetworking,
			EventDate:    "2026-01-15",
			Location:     "Library Atrium",
			Capacity:     30,
			NumAttendees: 30,
		},
		{
			EventID:      3,
			EventName:    "Resume Workshop",
			EventType:    model.EventTypePresentation,
			EventDate:    "2026-02-01",
			Location:     "Room 204",
			Capacity:     25,
			NumAttendees: 5,
		},
	}
}

func TestEventService_List_DefaultSortByDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockEventsAPI(ctrl)
	api.EXPECT().ListEvents(gomock.Any(), "tok").Return(eventFixtures(), nil)

	svc := NewEventService(api)

	events, err := svc.List(context.Background(), "tok", model.EventListOptions{})

	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, int64(2), events[0].EventID)
	assert.Equal(t, int64(3), events[1].EventID)
	assert.Equal(t, int64(1), events[2].EventID)
}

func TestEventService_List_FilterByType(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockEventsAPI(ctrl)
	api.EXPECT().ListEvents(gomock.Any(), "tok").Return(eventFixtures(), nil)

	svc := NewEventService(api)

	typ := model.EventTypeNetworking
	events, err := svc.List(context.Background(), "tok", model.EventListOptions{Type: &typ})

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Alumni Networking Night", events[0].EventName)
}

func TestEventService_List_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockEventsAPI(ctrl)
	api.EXPECT().ListEvents(gomock.Any(), "tok").Return(eventFixtures(), nil)

	svc := NewEventService(api)

	events, err := svc.List(context.Background(), "tok", model.EventListOptions{Q: "atrium"})

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(2), events[0].EventID)
}

func TestEventService_List_SortByNameDesc(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockEventsAPI(ctrl)
	api.EXPECT().ListEvents(gomock.Any(), "tok").Return(eventFixtures(), nil)

	svc := NewEventService(api)

	events, err := svc.List(context.Background(), "tok", model.EventListOptions{Sort: "name", Dir: "desc"})

	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "Spring Career Fair", events[0].EventName)
	assert.Equal(t, "Resume Workshop", events[1].EventName)
	assert.Equal(t, "Alumni Networking Night", events[2].EventName)
}

func TestEventService_List_UnknownSortFallsBackToDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockEventsAPI(ctrl)
	api.EXPECT().ListEvents(gomock.Any(), "tok").Return(eventFixtures(), nil)

	svc := NewEventService(api)

	events, err := svc.List(context.Background(), "tok", model.EventListOptions{Sort: "bogus"})

	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, int64(2), events[0].EventID)
}

func TestEventService_List_UpstreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockEventsAPI(ctrl)
	api.EXPECT().ListEvents(gomock.Any(), "tok").Return(nil, errors.New("upstream down"))

	svc := NewEventService(api)

	events, err := svc.List(context.Background(), "tok", model.EventListOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "list events")
	assert.Nil(t, events)
}

func TestEventService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockEventsAPI(ctrl)

	req := model.CreateEventRequest{
		EventName: "Fall Career Fair",
		EventType: model.EventTypeCareerFair,
		EventDate: "2026-10-01",
		EventTime: "10:00",
		Location:  "Gymnasium",
		Capacity:  200,
	}
	api.EXPECT().CreateEvent(gomock.Any(), "tok", req).Return(nil)

	svc := NewEventService(api)
	require.NoError(t, svc.Create(context.Background(), "tok", req))
}

func TestEventService_Attend(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockEventsAPI(ctrl)
	api.EXPECT().AttendEvent(gomock.Any(), "tok", int64(3)).Return("signed up for Resume Workshop", nil)

	svc := NewEventService(api)

	msg, err := svc.Attend(context.Background(), "tok", 3)
	require.NoError(t, err)
	assert.Equal(t, "signed up for Resume Workshop", msg)
}
