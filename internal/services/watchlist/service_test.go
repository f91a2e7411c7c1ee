package watchlist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skundu/trademind/internal/common"
	"github.com/skundu/trademind/internal/interfaces"
	"github.com/skundu/trademind/internal/models"
)

// memoryWatchlists keeps watchlists in a map, mirroring the persistent
// store's not-found behavior.
type memoryWatchlists struct {
	lists   map[string]*models.Watchlist
	saveErr error
}

func newMemoryWatchlists() *memoryWatchlists {
	return &memoryWatchlists{lists: make(map[string]*models.Watchlist)}
}

func (m *memoryWatchlists) GetWatchlist(_ context.Context, name string) (*models.Watchlist, error) {
	wl, ok := m.lists[name]
	if !ok {
		return nil, errors.New("watchlist not found")
	}
	copied := *wl
	return &copied, nil
}

func (m *memoryWatchlists) SaveWatchlist(_ context.Context, watchlist *models.Watchlist) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	copied := *watchlist
	m.lists[watchlist.Name] = &copied
	return nil
}

func (m *memoryWatchlists) DeleteWatchlist(_ context.Context, name string) error {
	delete(m.lists, name)
	return nil
}

type memoryStorage struct {
	watchlists *memoryWatchlists
}

func (m *memoryStorage) WatchlistStorage() interfaces.WatchlistStorage   { return m.watchlists }
func (m *memoryStorage) PreferenceStorage() interfaces.PreferenceStorage { return nil }
func (m *memoryStorage) Close() error                                    { return nil }

func newTestService() (*Service, *memoryWatchlists) {
	watchlists := newMemoryWatchlists()
	return NewService(&memoryStorage{watchlists: watchlists}, common.NewSilentLogger()), watchlists
}

func TestGetWatchlistEmptyByDefault(t *testing.T) {
	service, _ := newTestService()

	wl, err := service.GetWatchlist(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultName, wl.Name)
	require.NotNil(t, wl.Items)
	assert.Empty(t, wl.Items)
}

func TestAddSymbol(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	wl, err := service.AddSymbol(ctx, "TCS")
	require.NoError(t, err)
	require.Len(t, wl.Items, 1)
	assert.Equal(t, "TCS", wl.Items[0].Symbol)
	assert.False(t, wl.Items[0].AddedAt.IsZero())

	wl, err = service.AddSymbol(ctx, "INFY")
	require.NoError(t, err)
	require.Len(t, wl.Items, 2)
}

func TestAddSymbolIdempotent(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	_, err := service.AddSymbol(ctx, "TCS")
	require.NoError(t, err)
	wl, err := service.AddSymbol(ctx, "TCS")
	require.NoError(t, err)
	require.Len(t, wl.Items, 1)
}

func TestAddSymbolRequiresValue(t *testing.T) {
	service, _ := newTestService()

	_, err := service.AddSymbol(context.Background(), "   ")
	require.Error(t, err)
}

func TestAddSymbolTrimsWhitespace(t *testing.T) {
	service, _ := newTestService()

	wl, err := service.AddSymbol(context.Background(), "  TCS  ")
	require.NoError(t, err)
	require.Len(t, wl.Items, 1)
	assert.Equal(t, "TCS", wl.Items[0].Symbol)
}

func TestRemoveSymbol(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	_, err := service.AddSymbol(ctx, "TCS")
	require.NoError(t, err)
	_, err = service.AddSymbol(ctx, "INFY")
	require.NoError(t, err)

	wl, err := service.RemoveSymbol(ctx, "TCS")
	require.NoError(t, err)
	require.Len(t, wl.Items, 1)
	assert.Equal(t, "INFY", wl.Items[0].Symbol)
}

func TestRemoveSymbolAbsentIsNoOp(t *testing.T) {
	service, watchlists := newTestService()
	ctx := context.Background()

	_, err := service.AddSymbol(ctx, "TCS")
	require.NoError(t, err)

	// A failing save would surface here if the no-op path wrote anyway.
	watchlists.saveErr = errors.New("store down")
	wl, err := service.RemoveSymbol(ctx, "WIPRO")
	require.NoError(t, err)
	require.Len(t, wl.Items, 1)
}
