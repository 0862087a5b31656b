package cart

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/your-org/primecart/internal/catalog"
	"github.com/your-org/primecart/internal/config"
	"github.com/your-org/primecart/internal/infrastructure/storage"
	"github.com/your-org/primecart/internal/pkg/notify"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Store.TaxRate = 0.08
	return cfg
}

func testAdapter() *storage.Adapter {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return storage.NewAdapter(storage.NewMemoryBackend(), logger)
}

func product(id int, price float64) catalog.Product {
	return catalog.Product{
		ID:       id,
		Title:    "Product",
		Price:    price,
		Category: "test",
	}
}

func TestAddItem_MergesSameProduct(t *testing.T) {
	s := NewService(testAdapter(), &notify.Recorder{}, testConfig())

	s.AddItem(product(1, 10), 1)
	s.AddItem(product(1, 10), 2)
	s.AddItem(product(1, 10), 3)

	items := s.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 6, items[0].Quantity)
}

func TestAddItem_NormalizesNonPositiveQuantity(t *testing.T) {
	s := NewService(testAdapter(), &notify.Recorder{}, testConfig())

	s.AddItem(product(1, 10), 0)
	s.AddItem(product(2, 5), -3)

	items := s.Items()
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestAddItem_PreservesInsertionOrder(t *testing.T) {
	s := NewService(testAdapter(), &notify.Recorder{}, testConfig())

	s.AddItem(product(3, 1), 1)
	s.AddItem(product(1, 1), 1)
	s.AddItem(product(2, 1), 1)
	s.AddItem(product(3, 1), 1) // merge must not reorder

	items := s.Items()
	assert.Equal(t, []int{3, 1, 2}, []int{items[0].Product.ID, items[1].Product.ID, items[2].Product.ID})
}

func TestAddItem_Notifies(t *testing.T) {
	recorder := &notify.Recorder{}
	s := NewService(testAdapter(), recorder, testConfig())

	s.AddItem(catalog.Product{ID: 1, Title: "A very long product title that keeps going"}, 1)

	assert.Len(t, recorder.Messages, 1)
	assert.Equal(t, "A very long product title that… added to cart", recorder.Messages[0])
}

func TestUpdateQuantity_ZeroOrNegativeRemovesLine(t *testing.T) {
	s := NewService(testAdapter(), &notify.Recorder{}, testConfig())

	s.AddItem(product(1, 10), 2)
	s.UpdateQuantity(1, 0)
	assert.Empty(t, s.Items())

	s.AddItem(product(2, 10), 2)
	s.UpdateQuantity(2, -1)
	assert.Empty(t, s.Items())
}

func TestUpdateQuantity_SetsQuantity(t *testing.T) {
	s := NewService(testAdapter(), &notify.Recorder{}, testConfig())

	s.AddItem(product(1, 10), 2)
	s.UpdateQuantity(1, 7)

	assert.Equal(t, 7, s.Items()[0].Quantity)
	assert.Equal(t, 7, s.Count())
}

func TestUpdateQuantity_IsSilent(t *testing.T) {
	recorder := &notify.Recorder{}
	s := NewService(testAdapter(), recorder, testConfig())

	s.AddItem(product(1, 10), 1)
	notified := len(recorder.Messages)

	s.UpdateQuantity(1, 5)
	assert.Len(t, recorder.Messages, notified)
}

func TestRemoveItem_AbsentIsNoop(t *testing.T) {
	s := NewService(testAdapter(), &notify.Recorder{}, testConfig())

	s.AddItem(product(1, 10), 1)
	s.RemoveItem(42)

	assert.Len(t, s.Items(), 1)
}

func TestTotals_EmptyCart(t *testing.T) {
	s := NewService(testAdapter(), &notify.Recorder{}, testConfig())

	totals := s.Totals()
	assert.Zero(t, totals.Count)
	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.Tax)
	assert.Zero(t, totals.Total)
}

func TestTotals_KnownScenario(t *testing.T) {
	s := NewService(testAdapter(), &notify.Recorder{}, testConfig())

	s.AddItem(product(1, 10.00), 2)
	s.AddItem(product(2, 5.50), 1)

	assert.Equal(t, 3, s.Count())
	assert.InDelta(t, 25.50, s.Subtotal(), 1e-9)
	assert.InDelta(t, 2.04, s.Tax(), 1e-9)
	assert.InDelta(t, 27.54, s.Total(), 1e-9)
}

func TestTotals_AlwaysDerivedFromLines(t *testing.T) {
	s := NewService(testAdapter(), &notify.Recorder{}, testConfig())

	s.AddItem(product(1, 10), 1)
	s.UpdateQuantity(1, 4)

	totals := s.Totals()
	assert.InDelta(t, 40.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, totals.Subtotal+totals.Tax, totals.Total, 1e-9)
}

func TestClear(t *testing.T) {
	s := NewService(testAdapter(), &notify.Recorder{}, testConfig())

	s.AddItem(product(1, 10), 2)
	s.AddItem(product(2, 5), 1)
	s.Clear()

	assert.Empty(t, s.Items())
	assert.Zero(t, s.Count())
}

func TestPersistence_RestoredAcrossInstances(t *testing.T) {
	adapter := testAdapter()

	first := NewService(adapter, &notify.Recorder{}, testConfig())
	first.AddItem(product(1, 10), 2)
	first.AddItem(product(2, 5.5), 1)

	second := NewService(adapter, &notify.Recorder{}, testConfig())
	assert.Len(t, second.Items(), 2)
	assert.InDelta(t, 25.5, second.Subtotal(), 1e-9)
}

func TestItems_ReturnsCopy(t *testing.T) {
	s := NewService(testAdapter(), &notify.Recorder{}, testConfig())

	s.AddItem(product(1, 10), 1)

	items := s.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, s.Items()[0].Quantity)
}
