// Integration tests covering the full desk lifecycle: gateway, store,
// persistence round trip, and fallback degradation.
package integration

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/followdesk/followdesk/internal/fallback"
	"github.com/followdesk/followdesk/internal/sqlite"
	"github.com/followdesk/followdesk/internal/store"
	"github.com/followdesk/followdesk/pkg/types"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestDeskLifecycleRoundTrip(t *testing.T) {
	dataDir := t.TempDir()

	// First session: create data and close.
	gw := sqlite.NewGateway(dataDir, quietLogger())
	s := store.New(gw)
	s.Hydrate()

	fallbackActive, _ := s.StorageStatus()
	require.False(t, fallbackActive)

	customerID, err := s.AddCustomer(store.CustomerDraft{Name: "深圳客户A", Region: "华南"})
	require.NoError(t, err)
	_, err = s.AddTodo(store.TodoDraft{Title: "首次报价", CustomerID: customerID})
	require.NoError(t, err)
	todoID := s.Todos()[0].ID
	orderID, err := s.CompleteTodoWithConversion(todoID, types.OrderTypeOrder)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Second session: everything comes back from the database.
	gw2 := sqlite.NewGateway(dataDir, quietLogger())
	s2 := store.New(gw2)
	s2.Hydrate()
	defer s2.Close()

	require.Len(t, s2.Customers(), 1)
	assert.Equal(t, "深圳客户A", s2.Customers()[0].Name)

	order, ok := s2.OrderByID(orderID)
	require.True(t, ok)
	assert.Equal(t, todoID, order.SourceTodoID)

	todo, ok := s2.TodoByID(todoID)
	require.True(t, ok)
	assert.True(t, todo.Completed)
	require.NotNil(t, todo.OrderConversion)
	assert.Equal(t, orderID, todo.OrderConversion.OrderID)
}

func TestDeskFallbackDegradation(t *testing.T) {
	dataDir := t.TempDir()

	// Pointing the database path at a directory makes every open fail, so
	// the gateway must degrade to the fallback slot without erroring.
	broken := filepath.Join(dataDir, "broken.db")
	require.NoError(t, os.MkdirAll(broken, 0o755))

	gw := sqlite.NewGateway(dataDir, quietLogger(), sqlite.WithDatabasePath(broken))
	s := store.New(gw)
	s.Hydrate()

	customerID, err := s.AddCustomer(store.CustomerDraft{Name: "深圳客户A"})
	require.NoError(t, err)
	s.Flush()

	fallbackActive, status := s.StorageStatus()
	assert.True(t, fallbackActive)
	assert.Equal(t, "本地数据库不可用，已自动切换到本地兜底存储。", status)
	require.NoError(t, s.Close())

	// The fallback slot now holds the state and a fresh session reads it.
	slot := fallback.NewSlot(dataDir)
	state := slot.Read()
	require.Len(t, state.Customers, 1)
	assert.Equal(t, customerID, state.Customers[0].ID)

	gw2 := sqlite.NewGateway(dataDir, quietLogger(), sqlite.WithDatabasePath(broken))
	s2 := store.New(gw2)
	s2.Hydrate()
	defer s2.Close()

	fallbackActive, status = s2.StorageStatus()
	assert.True(t, fallbackActive)
	assert.Equal(t, "本地数据库不可用，当前使用本地兜底存储。", status)
	require.Len(t, s2.Customers(), 1)
}
