package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nroshal/tastebook/internal/adapter"
	"github.com/nroshal/tastebook/internal/logger"
	"github.com/nroshal/tastebook/internal/mock"
	"github.com/nroshal/tastebook/internal/store"
	"github.com/nroshal/tastebook/models"
)

func newCookingServiceWithMocks(t *testing.T) (ClientCookingService, *mock.MockServerAdapter, *mock.MockPendingCookingRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockQueue := mock.NewMockPendingCookingRepository(ctrl)
	storages := &store.ClientStorages{PendingCooking: mockQueue}

	return NewClientCookingService(storages, mockAdapter, logger.Nop()), mockAdapter, mockQueue
}

func TestClientCookingService_Start(t *testing.T) {
	svc, mockAdapter, _ := newCookingServiceWithMocks(t)

	mockAdapter.EXPECT().
		StartCooking(gomock.Any(), "r-1").
		Return("session-1", nil)

	require.NoError(t, svc.Start(context.Background(), "r-1", "Carbonara"))
}

func TestClientCookingService_Start_QueuesWhenOffline(t *testing.T) {
	svc, mockAdapter, mockQueue := newCookingServiceWithMocks(t)

	mockAdapter.EXPECT().
		StartCooking(gomock.Any(), "r-1").
		Return("", errConnRefused)

	var queued store.PendingCookingEvent
	mockQueue.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event store.PendingCookingEvent) error {
			queued = event
			return nil
		})

	require.NoError(t, svc.Start(context.Background(), "r-1", "Carbonara"))
	assert.NotEmpty(t, queued.ID)
	assert.Equal(t, "r-1", queued.RecipeID)
	assert.Equal(t, "Carbonara", queued.RecipeTitle)
	assert.Equal(t, store.PendingStart, queued.Action)
	assert.False(t, queued.CreatedAt.IsZero())
}

func TestClientCookingService_Complete_NoOpenSession(t *testing.T) {
	svc, mockAdapter, _ := newCookingServiceWithMocks(t)

	mockAdapter.EXPECT().
		CompleteCooking(gomock.Any(), "r-1").
		Return(adapter.ErrNotFound)

	err := svc.Complete(context.Background(), "r-1", "Carbonara")

	assert.ErrorIs(t, err, ErrNoActiveCookingSession)
}

func TestClientCookingService_Complete_QueuesWhenOffline(t *testing.T) {
	svc, mockAdapter, mockQueue := newCookingServiceWithMocks(t)

	mockAdapter.EXPECT().
		CompleteCooking(gomock.Any(), "r-1").
		Return(errConnRefused)

	var queued store.PendingCookingEvent
	mockQueue.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event store.PendingCookingEvent) error {
			queued = event
			return nil
		})

	require.NoError(t, svc.Complete(context.Background(), "r-1", "Carbonara"))
	assert.Equal(t, store.PendingComplete, queued.Action)
}

func TestClientCookingService_History(t *testing.T) {
	svc, mockAdapter, _ := newCookingServiceWithMocks(t)

	mockAdapter.EXPECT().
		CookingHistory(gomock.Any()).
		Return([]models.CookingRecord{
			{ID: "c-2", RecipeID: "r-1", Status: models.CookingInProgress},
			{ID: "c-1", RecipeID: "r-2", Status: models.CookingCompleted},
		}, nil)

	records, err := svc.History(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, models.CookingInProgress, records[0].Status)
}

func TestClientCookingService_FlushPending_ReplaysInOrder(t *testing.T) {
	svc, mockAdapter, mockQueue := newCookingServiceWithMocks(t)

	events := []store.PendingCookingEvent{
		{ID: "evt-1", RecipeID: "r-1", Action: store.PendingStart},
		{ID: "evt-2", RecipeID: "r-1", Action: store.PendingComplete},
	}
	mockQueue.EXPECT().List(gomock.Any()).Return(events, nil)

	gomock.InOrder(
		mockAdapter.EXPECT().StartCooking(gomock.Any(), "r-1").Return("session-1", nil),
		mockQueue.EXPECT().Delete(gomock.Any(), "evt-1").Return(nil),
		mockAdapter.EXPECT().CompleteCooking(gomock.Any(), "r-1").Return(nil),
		mockQueue.EXPECT().Delete(gomock.Any(), "evt-2").Return(nil),
	)

	flushed, err := svc.FlushPending(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, flushed)
}

func TestClientCookingService_FlushPending_StopsWhileStillOffline(t *testing.T) {
	svc, mockAdapter, mockQueue := newCookingServiceWithMocks(t)

	events := []store.PendingCookingEvent{
		{ID: "evt-1", RecipeID: "r-1", Action: store.PendingStart},
		{ID: "evt-2", RecipeID: "r-1", Action: store.PendingComplete},
	}
	mockQueue.EXPECT().List(gomock.Any()).Return(events, nil)
	mockAdapter.EXPECT().StartCooking(gomock.Any(), "r-1").Return("", errConnRefused)

	flushed, err := svc.FlushPending(context.Background())

	require.NoError(t, err)
	assert.Zero(t, flushed)
}

func TestClientCookingService_FlushPending_DropsRejectedEvents(t *testing.T) {
	svc, mockAdapter, mockQueue := newCookingServiceWithMocks(t)

	events := []store.PendingCookingEvent{
		{ID: "evt-1", RecipeID: "deleted-recipe", Action: store.PendingStart},
	}
	mockQueue.EXPECT().List(gomock.Any()).Return(events, nil)
	mockAdapter.EXPECT().StartCooking(gomock.Any(), "deleted-recipe").Return("", adapter.ErrNotFound)
	mockQueue.EXPECT().Delete(gomock.Any(), "evt-1").Return(nil)

	flushed, err := svc.FlushPending(context.Background())

	require.NoError(t, err)
	assert.Zero(t, flushed)
}

func TestClientCookingService_FlushPending_EmptyQueue(t *testing.T) {
	svc, _, mockQueue := newCookingServiceWithMocks(t)

	mockQueue.EXPECT().List(gomock.Any()).Return(nil, nil)

	flushed, err := svc.FlushPending(context.Background())

	require.NoError(t, err)
	assert.Zero(t, flushed)
}
