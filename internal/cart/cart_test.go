package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"addis-kitchen/internal/domain"
)

func item(id, name string, price float64) domain.MenuItem {
	return domain.MenuItem{ID: id, Name: name, Price: price, Available: true}
}

func TestAddItemMergesByIdentity(t *testing.T) {
	store := NewStore()

	store.AddItem(item("doro-wot", "Doro Wot", 18.99))
	store.AddItem(item("doro-wot", "Doro Wot", 18.99))

	lines := store.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)

	totals := store.Totals()
	assert.Equal(t, 2, totals.ItemCount)
	assert.InDelta(t, 37.98, totals.Subtotal, 0.001)
}

func TestTotalsTrackEveryMutation(t *testing.T) {
	store := NewStore()

	store.AddItem(item("a", "Doro Wot", 18.99))
	store.AddItem(item("b", "Vegetarian Combo", 15.99))
	store.AddItem(item("c", "Coffee", 4.99))
	store.UpdateQuantity("a", 3)
	store.RemoveItem("c")

	totals := store.Totals()
	assert.Equal(t, 4, totals.ItemCount)
	assert.InDelta(t, 3*18.99+15.99, totals.Subtotal, 0.001)

	store.UpdateQuantity("b", 2)
	totals = store.Totals()
	assert.Equal(t, 5, totals.ItemCount)
	assert.InDelta(t, 3*18.99+2*15.99, totals.Subtotal, 0.001)
}

func TestUpdateQuantityRemovesAtZeroOrBelow(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
	}{
		{name: "zero removes the line", quantity: 0},
		{name: "negative removes the line", quantity: -1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := NewStore()
			store.AddItem(item("a", "Doro Wot", 18.99))

			store.UpdateQuantity("a", testCase.quantity)

			assert.Empty(t, store.Lines())
			assert.Equal(t, Totals{}, store.Totals())
		})
	}
}

func TestRemoveMissingItemIsNoOp(t *testing.T) {
	store := NewStore()
	store.AddItem(item("a", "Doro Wot", 18.99))

	assert.NotPanics(t, func() { store.RemoveItem("missing") })
	assert.Len(t, store.Lines(), 1)
}

func TestClearEmptiesAllLines(t *testing.T) {
	store := NewStore()
	store.AddItem(item("a", "Doro Wot", 18.99))
	store.AddItem(item("b", "Coffee", 4.99))

	store.Clear()

	assert.Empty(t, store.Lines())
	assert.Equal(t, Totals{}, store.Totals())
}

func TestLinesKeepInsertionOrder(t *testing.T) {
	store := NewStore()
	store.AddItem(item("b", "Vegetarian Combo", 15.99))
	store.AddItem(item("a", "Doro Wot", 18.99))
	store.AddItem(item("b", "Vegetarian Combo", 15.99))

	lines := store.Lines()
	assert.Equal(t, "b", lines[0].ItemID)
	assert.Equal(t, "a", lines[1].ItemID)
}

func TestManagerKeepsSessionsSeparate(t *testing.T) {
	manager := NewManager()

	manager.Session("one").AddItem(item("a", "Doro Wot", 18.99))

	assert.Equal(t, 1, manager.Session("one").Totals().ItemCount)
	assert.Equal(t, 0, manager.Session("two").Totals().ItemCount)
	assert.Same(t, manager.Session("one"), manager.Session("one"))
}
