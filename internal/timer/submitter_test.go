package timer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() Record {
	return Record{
		Mode:            ModeStopwatch,
		StartTime:       epoch,
		EndTime:         epoch.Add(3 * time.Second),
		DurationSeconds: 3,
	}
}

func TestStoreSubmitter_SuccessRefreshes(t *testing.T) {
	store := &fakeStore{}
	var got []Refresh
	sub := NewStoreSubmitter(store, func(_ context.Context, r Refresh) { got = append(got, r) }, nil)

	require.NoError(t, sub.Submit(context.Background(), testRecord()))

	require.Len(t, store.created, 1)
	assert.Equal(t, 3.0, store.created[0].DurationSeconds)
	assert.Equal(t, epoch, store.created[0].StartTime)
	require.Len(t, got, 1)
	assert.Equal(t, "sess-1", got[0].SessionID)
	assert.Len(t, got[0].Sessions, 1)
	require.NotNil(t, got[0].Stats)
	assert.NoError(t, got[0].Err)
}

func TestStoreSubmitter_CreateFailureIsSubmissionError(t *testing.T) {
	cause := errors.New("disk full")
	store := &fakeStore{createErr: cause}
	refreshed := false
	sub := NewStoreSubmitter(store, func(context.Context, Refresh) { refreshed = true }, nil)

	err := sub.Submit(context.Background(), testRecord())

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
	assert.False(t, refreshed)
	assert.Zero(t, store.lists)
}

func TestStoreSubmitter_RefreshFailureIsNotSubmissionFailure(t *testing.T) {
	tests := []struct {
		name  string
		store *fakeStore
	}{
		{name: "list", store: &fakeStore{listErr: errors.New("list broke")}},
		{name: "stats", store: &fakeStore{statsErr: errors.New("stats broke")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Refresh
			sub := NewStoreSubmitter(tt.store, func(_ context.Context, r Refresh) { got = r }, nil)

			require.NoError(t, sub.Submit(context.Background(), testRecord()))
			assert.Len(t, tt.store.created, 1)
			assert.Error(t, got.Err)
			assert.Equal(t, "sess-1", got.SessionID)
		})
	}
}

func TestStoreSubmitter_WiredIntoEngine(t *testing.T) {
	store := &fakeStore{}
	e, clk, _ := newTestEngine(ModeStopwatch, WithSubmitter(NewStoreSubmitter(store, nil, nil)))
	require.NoError(t, e.Start())
	clk.Advance(4 * time.Second)

	_, err := e.Finish(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, store.created, 1)
	assert.Equal(t, 4.0, store.created[0].DurationSeconds)
	assert.Equal(t, 1, store.statReads)
}
