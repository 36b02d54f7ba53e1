package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

// fakeWatcher records Watch and Stop calls and lets tests fire changes.
type fakeWatcher struct {
	mu       sync.Mutex
	path     string
	onChange func()
	watchErr error
	stopped  chan struct{}
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{stopped: make(chan struct{})}
}

func (w *fakeWatcher) Watch(path string, onChange func()) error {
	if w.watchErr != nil {
		return w.watchErr
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.path = path
	w.onChange = onChange
	return nil
}

func (w *fakeWatcher) Stop() error {
	close(w.stopped)
	return nil
}

func (w *fakeWatcher) fire() {
	w.mu.Lock()
	fn := w.onChange
	w.mu.Unlock()
	fn()
}

func TestCorpusService_Terms(t *testing.T) {
	svc := NewCorpusService(newTestLexicon(t, fixtureRecords()), nil, "")

	terms, err := svc.Terms(context.Background())

	require.NoError(t, err)
	require.Len(t, terms, len(fixtureRecords()))
	assert.Equal(t, "locador", terms[0].Key)
	assert.Equal(t, "art. 23", terms[len(terms)-1].Key)
}

func TestCorpusService_Terms_Unavailable(t *testing.T) {
	svc := NewCorpusService(NewLexicon(&stubLoader{}, time.Second), nil, "")

	_, err := svc.Terms(context.Background())

	assert.ErrorIs(t, err, domain.ErrCorpusUnavailable)
}

func TestCorpusService_Reload(t *testing.T) {
	loader := &stubLoader{records: fixtureRecords()[:2]}
	lex := NewLexicon(loader, time.Second)
	svc := NewCorpusService(lex, nil, "")
	require.NoError(t, svc.Reload(context.Background()))

	loader.records = fixtureRecords()
	require.NoError(t, svc.Reload(context.Background()))

	terms, err := svc.Terms(context.Background())
	require.NoError(t, err)
	assert.Len(t, terms, len(fixtureRecords()))
	assert.Equal(t, 2, loader.calls)
}

func TestCorpusService_Reload_FailureKeepsSnapshot(t *testing.T) {
	loader := &stubLoader{records: fixtureRecords()}
	svc := NewCorpusService(NewLexicon(loader, time.Second), nil, "")
	require.NoError(t, svc.Reload(context.Background()))

	loader.err = domain.ErrCorpusInvalid
	err := svc.Reload(context.Background())

	assert.ErrorIs(t, err, domain.ErrCorpusInvalid)
	terms, err := svc.Terms(context.Background())
	require.NoError(t, err)
	assert.Len(t, terms, len(fixtureRecords()))
}

func TestCorpusService_Watch_Disabled(t *testing.T) {
	lex := newTestLexicon(t, fixtureRecords())

	assert.NoError(t, NewCorpusService(lex, nil, "/tmp/corpus.yaml").Watch(context.Background()))
	assert.NoError(t, NewCorpusService(lex, newFakeWatcher(), "").Watch(context.Background()))
}

func TestCorpusService_Watch_ReloadsOnChange(t *testing.T) {
	loader := &stubLoader{records: fixtureRecords()[:1]}
	lex := NewLexicon(loader, time.Second)
	require.NoError(t, lex.Load(context.Background()))
	watcher := newFakeWatcher()
	svc := NewCorpusService(lex, watcher, "/tmp/corpus.yaml")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, svc.Watch(ctx))
	assert.Equal(t, "/tmp/corpus.yaml", watcher.path)

	loader.records = fixtureRecords()
	watcher.fire()

	terms, err := svc.Terms(context.Background())
	require.NoError(t, err)
	assert.Len(t, terms, len(fixtureRecords()))
}

func TestCorpusService_Watch_StopsOnCancel(t *testing.T) {
	watcher := newFakeWatcher()
	svc := NewCorpusService(newTestLexicon(t, fixtureRecords()), watcher, "/tmp/corpus.yaml")

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, svc.Watch(ctx))
	cancel()

	select {
	case <-watcher.stopped:
	case <-time.After(time.Second):
		t.Fatal("watcher was not stopped")
	}
}

func TestCorpusService_Watch_Error(t *testing.T) {
	watcher := newFakeWatcher()
	watcher.watchErr = errors.New("no such directory")
	svc := NewCorpusService(newTestLexicon(t, fixtureRecords()), watcher, "/missing/corpus.yaml")

	err := svc.Watch(context.Background())

	assert.EqualError(t, err, "no such directory")
}
