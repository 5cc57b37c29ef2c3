package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/followdesk/followdesk/pkg/search"
	"github.com/followdesk/followdesk/pkg/types"
)

// fakeGateway records saves in memory and serves a canned load.
type fakeGateway struct {
	mu       sync.Mutex
	loaded   types.PersistedState
	fallback bool
	status   string
	saves    []types.PersistedState
	closed   bool
}

func (g *fakeGateway) LoadState() types.LoadResult {
	g.mu.Lock()
	defer g.mu.Unlock()
	return types.LoadResult{State: g.loaded, Fallback: g.fallback, Status: g.status}
}

func (g *fakeGateway) SaveState(state types.PersistedState) types.SaveResult {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.saves = append(g.saves, state)
	return types.SaveResult{Fallback: g.fallback, Status: g.status}
}

func (g *fakeGateway) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
	return nil
}

func (g *fakeGateway) saveCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.saves)
}

func (g *fakeGateway) lastSave() types.PersistedState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.saves[len(g.saves)-1]
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var testDay = time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *fakeGateway) {
	t.Helper()
	gw := &fakeGateway{}
	s := New(gw, WithClock(fixedClock(testDay)), WithDebounce(5*time.Millisecond))
	t.Cleanup(func() { _ = s.Close() })
	return s, gw
}

func mustAddCustomer(t *testing.T, s *Store, name string) string {
	t.Helper()
	id, err := s.AddCustomer(CustomerDraft{Name: name})
	require.NoError(t, err)
	return id
}

func mustAddTodo(t *testing.T, s *Store, customerID, title string) string {
	t.Helper()
	id, err := s.AddTodo(TodoDraft{Title: title, CustomerID: customerID})
	require.NoError(t, err)
	return id
}

func TestHydrateAppliesLoadedState(t *testing.T) {
	gw := &fakeGateway{
		loaded: types.PersistedState{
			Customers: []types.Customer{{ID: "c1", Name: "深圳客户A"}},
		},
		fallback: true,
		status:   "本地数据库不可用，当前使用本地兜底存储。",
	}
	s := New(gw, WithClock(fixedClock(testDay)))
	defer s.Close()

	assert.True(t, s.Loading())
	s.Hydrate()
	assert.False(t, s.Loading())

	fallback, status := s.StorageStatus()
	assert.True(t, fallback)
	assert.Equal(t, "本地数据库不可用，当前使用本地兜底存储。", status)
	require.Len(t, s.Customers(), 1)
	assert.Equal(t, "深圳客户A", s.Customers()[0].Name)
}

func TestAddTodoRequiresExistingCustomer(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.AddTodo(TodoDraft{Title: "回访", CustomerID: "ghost"})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Equal(t, "未找到客户。", err.Error())
}

func TestAddTodoDefaultsToSelectedDate(t *testing.T) {
	s, _ := newTestStore(t)
	customerID := mustAddCustomer(t, s, "深圳客户A")

	s.SetDate("2026-09-01")
	todoID := mustAddTodo(t, s, customerID, "回访")

	todo, ok := s.TodoByID(todoID)
	require.True(t, ok)
	assert.Equal(t, "2026-09-01", todo.Date)
	assert.Equal(t, 0, todo.SortOrder)

	second := mustAddTodo(t, s, customerID, "寄样")
	todo2, _ := s.TodoByID(second)
	assert.Equal(t, 1, todo2.SortOrder, "new todos append to the end of the bucket")
}

func TestConversionCreatesExactlyOneOrder(t *testing.T) {
	s, _ := newTestStore(t)
	customerID := mustAddCustomer(t, s, "深圳客户A")
	todoID := mustAddTodo(t, s, customerID, "报价跟进")

	orderID, err := s.CompleteTodoWithConversion(todoID, types.OrderTypeOrder)
	require.NoError(t, err)

	orders := s.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, orderID, orders[0].ID)
	assert.Equal(t, todoID, orders[0].SourceTodoID)
	assert.Equal(t, customerID, orders[0].CustomerID)
	assert.Equal(t, types.InitialOrderStatus(), orders[0].Status)
	assert.Equal(t, "20260828-0001", orders[0].OrderNo)
	assert.Empty(t, orders[0].Items, "a todo with an empty draft converts to an order with no items")
	require.Len(t, orders[0].Timeline, 1)
	assert.Equal(t, "由待办转正式订单", orders[0].Timeline[0].Action)

	todo, _ := s.TodoByID(todoID)
	assert.True(t, todo.Completed)
	require.NotNil(t, todo.OrderConversion)
	assert.Equal(t, orderID, todo.OrderConversion.OrderID)
	assert.Equal(t, types.OrderTypeOrder, todo.OrderConversion.Type)

	// A second conversion of the same todo is refused.
	_, err = s.CompleteTodoWithConversion(todoID, types.OrderTypeOrder)
	require.Error(t, err)
	assert.Len(t, s.Orders(), 1)
}

func TestSameDayOrderNosStrictlyIncrease(t *testing.T) {
	s, _ := newTestStore(t)
	customerID := mustAddCustomer(t, s, "深圳客户A")

	seen := map[string]bool{}
	for _, want := range []string{"20260828-0001", "20260828-0002", "20260828-0003"} {
		todoID := mustAddTodo(t, s, customerID, "跟进")
		orderID, err := s.CompleteTodoWithConversion(todoID, types.OrderTypeOpportunity)
		require.NoError(t, err)
		order, ok := s.OrderByID(orderID)
		require.True(t, ok)
		assert.Equal(t, want, order.OrderNo)
		assert.False(t, seen[order.OrderNo], "order numbers must not repeat")
		seen[order.OrderNo] = true
	}
}

func TestUncompleteDoesNotReverseConversion(t *testing.T) {
	s, _ := newTestStore(t)
	customerID := mustAddCustomer(t, s, "深圳客户A")
	todoID := mustAddTodo(t, s, customerID, "报价跟进")
	orderID, err := s.CompleteTodoWithConversion(todoID, types.OrderTypeOrder)
	require.NoError(t, err)

	require.NoError(t, s.SetTodoCompleted(todoID, false))

	todo, _ := s.TodoByID(todoID)
	assert.False(t, todo.Completed)
	assert.NotNil(t, todo.OrderConversion, "conversion record survives un-completing")
	_, ok := s.OrderByID(orderID)
	assert.True(t, ok, "spawned order survives un-completing")
}

func TestConversionRejectsUnknownType(t *testing.T) {
	s, _ := newTestStore(t)
	customerID := mustAddCustomer(t, s, "深圳客户A")
	todoID := mustAddTodo(t, s, customerID, "报价跟进")

	_, err := s.CompleteTodoWithConversion(todoID, "quote")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestReorderTodosReassignsBucketPositions(t *testing.T) {
	s, _ := newTestStore(t)
	customerID := mustAddCustomer(t, s, "深圳客户A")
	a := mustAddTodo(t, s, customerID, "A")
	b := mustAddTodo(t, s, customerID, "B")
	c := mustAddTodo(t, s, customerID, "C")

	date := s.SelectedDate()
	s.ReorderTodos(date, []string{c, a, b})

	ordered := s.TodosForDate(date)
	require.Len(t, ordered, 3)
	assert.Equal(t, []string{"C", "A", "B"}, []string{ordered[0].Title, ordered[1].Title, ordered[2].Title})
	assert.Equal(t, []int{0, 1, 2}, []int{ordered[0].SortOrder, ordered[1].SortOrder, ordered[2].SortOrder})
}

func TestTransitionOrderStatusAppendsTimeline(t *testing.T) {
	s, _ := newTestStore(t)
	customerID := mustAddCustomer(t, s, "深圳客户A")
	todoID := mustAddTodo(t, s, customerID, "报价跟进")
	orderID, _ := s.CompleteTodoWithConversion(todoID, types.OrderTypeOrder)

	require.NoError(t, s.TransitionOrderStatus(orderID, "报价中", "已发送初版报价"))
	// Backward transitions are allowed; the enum order is presentational.
	require.NoError(t, s.TransitionOrderStatus(orderID, "询价中", ""))

	order, _ := s.OrderByID(orderID)
	assert.Equal(t, "询价中", order.Status)
	require.Len(t, order.Timeline, 3)
	assert.Equal(t, "状态更新为：报价中", order.Timeline[1].Action)
	assert.Equal(t, "已发送初版报价", order.Timeline[1].Detail)
	assert.Equal(t, "状态更新为：询价中", order.Timeline[2].Action)

	err := s.TransitionOrderStatus(orderID, "不存在的状态", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestAppendOrderTimeline(t *testing.T) {
	s, _ := newTestStore(t)
	customerID := mustAddCustomer(t, s, "深圳客户A")
	todoID := mustAddTodo(t, s, customerID, "报价跟进")
	orderID, _ := s.CompleteTodoWithConversion(todoID, types.OrderTypeOrder)

	require.NoError(t, s.AppendOrderTimeline(orderID, "客户要求加急"))
	order, _ := s.OrderByID(orderID)
	last := order.Timeline[len(order.Timeline)-1]
	assert.Equal(t, "添加跟单记录", last.Action)
	assert.Equal(t, "客户要求加急", last.Detail)

	err := s.AppendOrderTimeline("ghost", "x")
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Equal(t, "未找到订单。", err.Error())
}

func TestDeleteCustomerBlockedByOrders(t *testing.T) {
	s, _ := newTestStore(t)
	customerID := mustAddCustomer(t, s, "深圳客户A")
	todoID := mustAddTodo(t, s, customerID, "报价跟进")
	_, err := s.CompleteTodoWithConversion(todoID, types.OrderTypeOrder)
	require.NoError(t, err)

	err = s.DeleteCustomerToRecycleBin(customerID)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrReferenced)
	assert.Equal(t, "该客户存在 1 条关联订单，无法删除。", err.Error())
	require.Len(t, s.Customers(), 1, "blocked delete leaves the customer live")
	assert.Empty(t, s.RecycleBin())
}

func TestDeleteCustomerSucceedsWithoutReferences(t *testing.T) {
	s, _ := newTestStore(t)
	customerID := mustAddCustomer(t, s, "深圳客户A")

	require.NoError(t, s.DeleteCustomerToRecycleBin(customerID))
	assert.Empty(t, s.Customers())

	bin := s.RecycleBin()
	require.Len(t, bin, 1)
	assert.Equal(t, types.RecycleEntityCustomer, bin[0].EntityType)
	assert.Equal(t, customerID, bin[0].EntityID)
	require.NotNil(t, bin[0].Snapshot.Customer)
	assert.Equal(t, "深圳客户A", bin[0].Snapshot.Customer.Name)
}

func TestDeleteProductBlockedByOrderItems(t *testing.T) {
	s, _ := newTestStore(t)
	customerID := mustAddCustomer(t, s, "深圳客户A")
	productID, err := s.AddProduct(ProductDraft{Model: "SC-100", Name: "扫码枪"})
	require.NoError(t, err)

	_, err = s.AddTodo(TodoDraft{
		Title: "下单", CustomerID: customerID,
		OrderDraft: &types.OrderDraft{Items: []types.DraftItem{{Kind: types.ItemKindCatalog, ProductID: productID, Quantity: 1}}},
	})
	require.NoError(t, err)
	todos := s.Todos()
	_, err = s.CompleteTodoWithConversion(todos[0].ID, types.OrderTypeOrder)
	require.NoError(t, err)

	err = s.DeleteProductToRecycleBin(productID)
	require.Error(t, err)
	assert.Equal(t, "该产品存在 1 条关联订单，无法删除。", err.Error())

	// Removing the referencing order lifts the block.
	require.NoError(t, s.DeleteOrderToRecycleBin(s.Orders()[0].ID))
	require.NoError(t, s.DeleteProductToRecycleBin(productID))
	assert.Empty(t, s.Products())
}

func TestRestoreOrderRequiresDependencies(t *testing.T) {
	s, _ := newTestStore(t)
	customerID := mustAddCustomer(t, s, "深圳客户A")
	todoID := mustAddTodo(t, s, customerID, "报价跟进")
	orderID, _ := s.CompleteTodoWithConversion(todoID, types.OrderTypeOrder)

	require.NoError(t, s.DeleteOrderToRecycleBin(orderID))
	require.NoError(t, s.DeleteCustomerToRecycleBin(customerID))

	bin := s.RecycleBin()
	require.Len(t, bin, 2)
	var orderEntry, customerEntry types.RecycleBinItem
	for _, entry := range bin {
		switch entry.EntityType {
		case types.RecycleEntityOrder:
			orderEntry = entry
		case types.RecycleEntityCustomer:
			customerEntry = entry
		}
	}

	err := s.RestoreFromRecycleBin(orderEntry.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrMissingDependency)
	assert.Equal(t, "恢复失败：关联客户不存在。", err.Error())
	assert.Len(t, s.RecycleBin(), 2, "failed restore keeps the recycle entry")

	require.NoError(t, s.RestoreFromRecycleBin(customerEntry.ID))
	require.NoError(t, s.RestoreFromRecycleBin(orderEntry.ID))
	assert.Len(t, s.Orders(), 1)
	assert.Empty(t, s.RecycleBin())
}

func TestRestoreRoundTripsRepeatedly(t *testing.T) {
	s, _ := newTestStore(t)
	customerID := mustAddCustomer(t, s, "深圳客户A")
	require.NoError(t, s.DeleteCustomerToRecycleBin(customerID))
	recycleID := s.RecycleBin()[0].ID

	require.NoError(t, s.RestoreFromRecycleBin(recycleID))

	// Re-delete and restore again round-trips.
	require.NoError(t, s.DeleteCustomerToRecycleBin(customerID))
	recycleID = s.RecycleBin()[0].ID
	require.NoError(t, s.RestoreFromRecycleBin(recycleID))
	require.Len(t, s.Customers(), 1)
	assert.Equal(t, customerID, s.Customers()[0].ID)
}

func TestRestoreRejectsIDCollision(t *testing.T) {
	// Hydrate a state where every recycle snapshot's id also exists live,
	// as after restoring from an older backup.
	gw := &fakeGateway{
		loaded: types.PersistedState{
			Customers: []types.Customer{{ID: "c1", Name: "深圳客户A"}},
			Orders:    []types.Order{{ID: "o1", OrderNo: "20260801-0001", CustomerID: "c1"}},
			Products:  []types.Product{{ID: "p1", Model: "SC-100", Name: "扫码枪"}},
			RecycleBin: []types.RecycleBinItem{
				{
					ID:         "r-order",
					EntityType: types.RecycleEntityOrder,
					EntityID:   "o1",
					Snapshot:   types.RecycleSnapshot{Order: &types.Order{ID: "o1", CustomerID: "c1"}},
				},
				{
					ID:         "r-customer",
					EntityType: types.RecycleEntityCustomer,
					EntityID:   "c1",
					Snapshot:   types.RecycleSnapshot{Customer: &types.Customer{ID: "c1", Name: "深圳客户A"}},
				},
				{
					ID:         "r-product",
					EntityType: types.RecycleEntityProduct,
					EntityID:   "p1",
					Snapshot:   types.RecycleSnapshot{Product: &types.Product{ID: "p1", Model: "SC-100"}},
				},
			},
		},
	}
	s := New(gw, WithClock(fixedClock(testDay)))
	defer s.Close()
	s.Hydrate()

	tests := []struct {
		recycleID string
		wantMsg   string
	}{
		{"r-order", "恢复失败：订单ID冲突。"},
		{"r-customer", "恢复失败：客户ID冲突。"},
		{"r-product", "恢复失败：产品ID冲突。"},
	}
	for _, tt := range tests {
		err := s.RestoreFromRecycleBin(tt.recycleID)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrIDConflict)
		assert.Equal(t, tt.wantMsg, err.Error())
	}

	assert.Len(t, s.RecycleBin(), 3, "refused restores keep their entries")
	assert.Len(t, s.Orders(), 1)
	assert.Len(t, s.Customers(), 1)
	assert.Len(t, s.Products(), 1)
}

func TestPurgeIsPermanent(t *testing.T) {
	s, _ := newTestStore(t)
	customerID := mustAddCustomer(t, s, "深圳客户A")
	require.NoError(t, s.DeleteCustomerToRecycleBin(customerID))
	recycleID := s.RecycleBin()[0].ID

	require.NoError(t, s.PurgeRecycleBin(recycleID))
	assert.Empty(t, s.RecycleBin())

	err := s.RestoreFromRecycleBin(recycleID)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Equal(t, "未找到回收站条目。", err.Error())
}

func TestArchiveUndoRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	customerID := mustAddCustomer(t, s, "深圳客户A")
	_, err := s.AddTodo(TodoDraft{
		Title: "定制需求", CustomerID: customerID,
		OrderDraft: &types.OrderDraft{Items: []types.DraftItem{{Kind: types.ItemKindNewCustom, CustomSpecText: "加长线缆3米", Quantity: 1}}},
	})
	require.NoError(t, err)
	orderID, err := s.CompleteTodoWithConversion(s.Todos()[0].ID, types.OrderTypeOrder)
	require.NoError(t, err)

	productID, err := s.ArchiveCustomItemToProduct(orderID, 0, nil)
	require.NoError(t, err)

	product, ok := s.ProductByID(productID)
	require.True(t, ok)
	assert.Equal(t, types.ProductTypeArchivedCustom, product.ProductType)
	assert.Equal(t, "CUST-2026-0001", product.Model)
	assert.Equal(t, types.ProductStatusCustomOnly, product.Status)
	assert.Equal(t, orderID, product.SourceOrderID)
	assert.Equal(t, customerID, product.SourceCustomerID)

	order, _ := s.OrderByID(orderID)
	assert.Equal(t, types.ItemKindArchivedCustom, order.Items[0].Kind)
	assert.Equal(t, productID, order.Items[0].ProductID)
	require.NotNil(t, order.Items[0].Snapshot)
	assert.Equal(t, "CUST-2026-0001", order.Items[0].Snapshot.Model)
	assert.Equal(t, "定制条目已归档到产品库", order.Timeline[len(order.Timeline)-1].Action)

	recycleID, err := s.UndoArchiveCustomItem(orderID, 0)
	require.NoError(t, err)

	order, _ = s.OrderByID(orderID)
	assert.Equal(t, types.ItemKindNewCustom, order.Items[0].Kind)
	assert.Empty(t, order.Items[0].ProductID)
	assert.Nil(t, order.Items[0].Snapshot)
	assert.Equal(t, "加长线缆3米", order.Items[0].CustomSpecText, "original spec text is restored")

	assert.Empty(t, s.Products(), "spawned product leaves the live catalog")
	bin := s.RecycleBin()
	require.Len(t, bin, 1)
	assert.Equal(t, recycleID, bin[0].ID)
	assert.Equal(t, "撤销归档", bin[0].Reason)
	require.NotNil(t, bin[0].Snapshot.Product)
	assert.Equal(t, productID, bin[0].Snapshot.Product.ID)

	// A second undo of the same item is refused.
	_, err = s.UndoArchiveCustomItem(orderID, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrNotUndoable)
}

func TestUndoArchiveBlockedByOtherOrderReference(t *testing.T) {
	s, _ := newTestStore(t)
	customerID := mustAddCustomer(t, s, "深圳客户A")
	_, err := s.AddTodo(TodoDraft{
		Title: "定制需求", CustomerID: customerID,
		OrderDraft: &types.OrderDraft{Items: []types.DraftItem{{Kind: types.ItemKindNewCustom, CustomSpecText: "定制支架", Quantity: 1}}},
	})
	require.NoError(t, err)
	orderID, _ := s.CompleteTodoWithConversion(s.Todos()[0].ID, types.OrderTypeOrder)
	productID, err := s.ArchiveCustomItemToProduct(orderID, 0, nil)
	require.NoError(t, err)

	// A second order references the archived product.
	_, err = s.AddTodo(TodoDraft{
		Title: "复购", CustomerID: customerID,
		OrderDraft: &types.OrderDraft{Items: []types.DraftItem{{Kind: types.ItemKindCatalog, ProductID: productID, Quantity: 2}}},
	})
	require.NoError(t, err)
	var secondTodo string
	for _, todo := range s.Todos() {
		if todo.Title == "复购" {
			secondTodo = todo.ID
		}
	}
	_, err = s.CompleteTodoWithConversion(secondTodo, types.OrderTypeOrder)
	require.NoError(t, err)

	_, err = s.UndoArchiveCustomItem(orderID, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrReferenced)
	assert.Equal(t, "该归档产品已被其他订单引用，无法撤销。", err.Error())
	_, ok := s.ProductByID(productID)
	assert.True(t, ok, "refused undo keeps the product live")
}

func TestDebounceCoalescesBursts(t *testing.T) {
	gw := &fakeGateway{}
	s := New(gw, WithClock(fixedClock(testDay)), WithDebounce(30*time.Millisecond))
	defer s.Close()

	customerID := mustAddCustomer(t, s, "深圳客户A")
	for i := 0; i < 4; i++ {
		mustAddTodo(t, s, customerID, "跟进")
	}

	assert.Equal(t, 0, gw.saveCount(), "nothing persists inside the quiet window")

	assert.Eventually(t, func() bool { return gw.saveCount() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, gw.saveCount(), "a burst collapses into one save")

	last := gw.lastSave()
	assert.Len(t, last.Todos, 4, "the single save holds the latest snapshot")
	assert.Len(t, last.Customers, 1)
}

func TestFlushPersistsImmediately(t *testing.T) {
	gw := &fakeGateway{}
	s := New(gw, WithClock(fixedClock(testDay)), WithDebounce(time.Hour))
	defer s.Close()

	mustAddCustomer(t, s, "深圳客户A")
	assert.Equal(t, 0, gw.saveCount())

	s.Flush()
	require.Equal(t, 1, gw.saveCount())
	assert.Len(t, gw.lastSave().Customers, 1)

	s.Flush()
	assert.Equal(t, 1, gw.saveCount(), "flush without new mutations is a no-op")
}

func TestCloseFlushesAndClosesGateway(t *testing.T) {
	gw := &fakeGateway{}
	s := New(gw, WithClock(fixedClock(testDay)), WithDebounce(time.Hour))

	mustAddCustomer(t, s, "深圳客户A")
	require.NoError(t, s.Close())

	assert.Equal(t, 1, gw.saveCount())
	assert.True(t, gw.closed)
}

func TestPersistRecordsFallbackStatus(t *testing.T) {
	gw := &fakeGateway{fallback: true, status: "本地数据库不可用，已自动切换到本地兜底存储。"}
	s := New(gw, WithClock(fixedClock(testDay)), WithDebounce(time.Hour))
	defer s.Close()

	mustAddCustomer(t, s, "深圳客户A")
	s.Flush()

	fallback, status := s.StorageStatus()
	assert.True(t, fallback)
	assert.Equal(t, "本地数据库不可用，已自动切换到本地兜底存储。", status)
}

func TestSearchProductsThroughStore(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.AddProduct(ProductDraft{
		Model: "SC-100", Name: "有线扫码枪",
		Specs: types.ProductSpecs{Scan: &types.ScanSpecs{CodeTypes: []string{"2D"}}},
	})
	require.NoError(t, err)

	got := s.SearchProducts("sc-100", search.Filters{})
	require.Len(t, got, 1)
	assert.Equal(t, "SC-100", got[0].Model)
}
