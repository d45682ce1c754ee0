package listing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "facilities-console/pkg/errors"
	"facilities-console/pkg/types"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *recordingNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

type fakeBackend struct {
	mu    sync.Mutex
	calls []types.ListQuery
	fn    func(ctx context.Context, q types.ListQuery) (types.ListResponse[string], error)
}

func (f *fakeBackend) fetch(ctx context.Context, q types.ListQuery) (types.ListResponse[string], error) {
	f.mu.Lock()
	f.calls = append(f.calls, q)
	f.mu.Unlock()
	return f.fn(ctx, q)
}

func (f *fakeBackend) recorded() []types.ListQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]types.ListQuery(nil), f.calls...)
}

func pageOf(q types.ListQuery, total int) types.ListResponse[string] {
	return types.ListResponse[string]{
		Items: []string{fmt.Sprintf("p%d:%s", q.Page, q.Search)},
		Meta:  types.ListMeta{Page: q.Page, Take: 8, Total: null.IntFrom(total)},
	}
}

func TestSession_InitialLoad(t *testing.T) {
	backend := &fakeBackend{fn: func(ctx context.Context, q types.ListQuery) (types.ListResponse[string], error) {
		return pageOf(q, 17), nil
	}}
	s := NewSession(backend.fetch, SessionOptions{Limit: 8})
	defer s.Close()

	assert.Equal(t, StatusIdle, s.Snapshot().Status)
	s.Start()
	s.Wait()

	snap := s.Snapshot()
	assert.Equal(t, StatusLoaded, snap.Status)
	assert.Equal(t, []string{"p1:"}, snap.Rows)
	assert.Equal(t, 3, snap.Pages)
	assert.Equal(t, 17, snap.Total)
	assert.Equal(t, []types.ListQuery{{Page: 1, Limit: 8}}, backend.recorded())
}

func TestSession_OnlyLatestFetchCommits(t *testing.T) {
	release := make(chan struct{})
	firstCanceled := make(chan struct{})
	backend := &fakeBackend{fn: func(ctx context.Context, q types.ListQuery) (types.ListResponse[string], error) {
		if q.Page == 1 {
			<-ctx.Done()
			close(firstCanceled)
			// ответ приходит, несмотря на отмену
			<-release
			return types.ListResponse[string]{Items: []string{"stale"}}, nil
		}
		return pageOf(q, 17), nil
	}}
	s := NewSession(backend.fetch, SessionOptions{Limit: 8})
	defer s.Close()

	s.Start()
	s.SetPage(2)

	select {
	case <-firstCanceled:
	case <-time.After(time.Second):
		t.Fatal("первый запрос не был отменён")
	}
	close(release)
	s.Wait()

	snap := s.Snapshot()
	assert.Equal(t, 2, snap.Page)
	assert.Equal(t, []string{"p2:"}, snap.Rows)
	assert.Equal(t, StatusLoaded, snap.Status)
}

func TestSession_CanceledErrorIsSwallowed(t *testing.T) {
	notifier := &recordingNotifier{}
	backend := &fakeBackend{fn: func(ctx context.Context, q types.ListQuery) (types.ListResponse[string], error) {
		if q.Page == 1 {
			<-ctx.Done()
			return types.ListResponse[string]{}, ctx.Err()
		}
		return pageOf(q, 40), nil
	}}
	s := NewSession(backend.fetch, SessionOptions{Limit: 8, Notifier: notifier})
	defer s.Close()

	s.Start()
	s.SetPage(3)
	s.Wait()

	assert.Empty(t, notifier.all())
	assert.Equal(t, StatusLoaded, s.Snapshot().Status)
	assert.Equal(t, []string{"p3:"}, s.Snapshot().Rows)
}

func TestSession_DebouncedSearchFetchesOnceAndResetsPage(t *testing.T) {
	backend := &fakeBackend{fn: func(ctx context.Context, q types.ListQuery) (types.ListResponse[string], error) {
		return pageOf(q, 30), nil
	}}
	s := NewSession(backend.fetch, SessionOptions{Page: 3, Limit: 8, Debounce: 30 * time.Millisecond})
	defer s.Close()

	s.Start()
	s.Wait()

	for _, input := range []string{"a", "au", "aul", "aula"} {
		s.SetSearchInput(input)
	}
	assert.Equal(t, "aula", s.Snapshot().SearchInput)
	assert.Equal(t, "", s.Snapshot().Search)

	require.Eventually(t, func() bool {
		return len(backend.recorded()) == 2 && s.Snapshot().Status == StatusLoaded
	}, time.Second, 5*time.Millisecond)
	time.Sleep(90 * time.Millisecond)

	calls := backend.recorded()
	require.Len(t, calls, 2)
	assert.Equal(t, types.ListQuery{Page: 1, Limit: 8, Search: "aula"}, calls[1])
	assert.Equal(t, 1, s.Snapshot().Page)
	assert.Equal(t, []string{"p1:aula"}, s.Snapshot().Rows)
}

func TestSession_ZeroDebounceCommitsImmediately(t *testing.T) {
	backend := &fakeBackend{fn: func(ctx context.Context, q types.ListQuery) (types.ListResponse[string], error) {
		return pageOf(q, 1), nil
	}}
	s := NewSession(backend.fetch, SessionOptions{Limit: 8})
	defer s.Close()

	s.SetSearchInput("  bloque ")
	s.Wait()

	calls := backend.recorded()
	require.Len(t, calls, 1)
	assert.Equal(t, "bloque", calls[0].Search)
}

func TestSession_StaleOnError(t *testing.T) {
	notifier := &recordingNotifier{}
	fail := false
	var mu sync.Mutex
	backend := &fakeBackend{fn: func(ctx context.Context, q types.ListQuery) (types.ListResponse[string], error) {
		mu.Lock()
		defer mu.Unlock()
		if fail {
			return types.ListResponse[string]{}, &apperrors.APIError{Status: 500, Message: "Fallo del servidor"}
		}
		return pageOf(q, 17), nil
	}}
	s := NewSession(backend.fetch, SessionOptions{Limit: 8, Notifier: notifier})
	defer s.Close()

	s.Start()
	s.Wait()

	mu.Lock()
	fail = true
	mu.Unlock()
	s.SetPage(2)
	s.Wait()

	snap := s.Snapshot()
	assert.Equal(t, StatusErrored, snap.Status)
	assert.Equal(t, []string{"p1:"}, snap.Rows)
	assert.Equal(t, []string{"Fallo del servidor"}, notifier.all())
	assert.Error(t, snap.Err)
}

func TestSession_RetypingSameSearchRetriesAfterError(t *testing.T) {
	notifier := &recordingNotifier{}
	fail := true
	var mu sync.Mutex
	backend := &fakeBackend{fn: func(ctx context.Context, q types.ListQuery) (types.ListResponse[string], error) {
		mu.Lock()
		defer mu.Unlock()
		if fail {
			return types.ListResponse[string]{}, fmt.Errorf("%w: connection refused", apperrors.ErrTransport)
		}
		return pageOf(q, 1), nil
	}}
	s := NewSession(backend.fetch, SessionOptions{Limit: 8, Notifier: notifier})
	defer s.Close()

	s.SetSearchInput("abc")
	s.Wait()
	require.Equal(t, StatusErrored, s.Snapshot().Status)

	mu.Lock()
	fail = false
	mu.Unlock()
	s.SetSearchInput("abc")
	s.Wait()

	calls := backend.recorded()
	require.Len(t, calls, 2)
	assert.Equal(t, "abc", calls[1].Search)
	assert.Equal(t, 1, calls[1].Page)
	snap := s.Snapshot()
	assert.Equal(t, StatusLoaded, snap.Status)
	assert.Equal(t, []string{"p1:abc"}, snap.Rows)
}

func TestSession_RetypingSameSearchAfterSuccessDoesNotRefetch(t *testing.T) {
	backend := &fakeBackend{fn: func(ctx context.Context, q types.ListQuery) (types.ListResponse[string], error) {
		return pageOf(q, 1), nil
	}}
	s := NewSession(backend.fetch, SessionOptions{Limit: 8})
	defer s.Close()

	s.SetSearchInput("abc")
	s.Wait()
	s.SetSearchInput("abc ")
	s.Wait()

	assert.Len(t, backend.recorded(), 1)
}

func TestSession_InitialErrorLeavesRowsEmpty(t *testing.T) {
	notifier := &recordingNotifier{}
	backend := &fakeBackend{fn: func(ctx context.Context, q types.ListQuery) (types.ListResponse[string], error) {
		return types.ListResponse[string]{}, fmt.Errorf("%w: connection refused", apperrors.ErrTransport)
	}}
	s := NewSession(backend.fetch, SessionOptions{Notifier: notifier})
	defer s.Close()

	s.Start()
	s.Wait()

	assert.Empty(t, s.Snapshot().Rows)
	assert.Equal(t, StatusErrored, s.Snapshot().Status)
	assert.Equal(t, []string{apperrors.UserMessage(apperrors.ErrTransport)}, notifier.all())
}

func TestSession_CloseCancelsInFlight(t *testing.T) {
	started := make(chan struct{})
	notifier := &recordingNotifier{}
	backend := &fakeBackend{fn: func(ctx context.Context, q types.ListQuery) (types.ListResponse[string], error) {
		close(started)
		<-ctx.Done()
		return types.ListResponse[string]{}, errors.Join(apperrors.ErrTransport, ctx.Err())
	}}
	s := NewSession(backend.fetch, SessionOptions{Notifier: notifier, Debounce: time.Hour})

	var changes []Status
	var mu sync.Mutex
	s.OnChange(func(snap Snapshot[string]) {
		mu.Lock()
		changes = append(changes, snap.Status)
		mu.Unlock()
	})

	s.Start()
	<-started
	s.SetSearchInput("pendiente")
	s.Close()
	s.Wait()

	assert.Empty(t, notifier.all())
	assert.Len(t, backend.recorded(), 1)
	mu.Lock()
	assert.Equal(t, []Status{StatusLoading}, changes)
	mu.Unlock()
}
