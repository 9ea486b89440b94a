package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"boketto-bot/internal/domain/entity"
)

func TestDishes_SampleCatalog(t *testing.T) {
	d := Dishes()
	require.Len(t, d, 4)

	prices := map[string]int{}
	for _, dish := range d {
		prices[dish.Name] = dish.Price
	}
	require.Equal(t, map[string]int{
		"Grilled Paneer Tikka":   240,
		"Tofu Broccoli Stir Fry": 320,
		"Roasted Chicken Salad":  380,
		"Quinoa Veggie Bowl":     290,
	}, prices)
}

func TestDishes_ReturnsIndependentCopies(t *testing.T) {
	first := Dishes()
	first[0].Name = "changed"
	first[0].Tags[0] = "changed"

	second := Dishes()
	require.Equal(t, "Grilled Paneer Tikka", second[0].Name)
	require.Equal(t, "Rich Calcium", second[0].Tags[0])
}

func TestDishes_VegHighProteinScenario(t *testing.T) {
	got := entity.FilterAndSort(Dishes(), entity.FilterState{VegOnly: true, Category: entity.CategoryHighProtein})
	require.Len(t, got, 2)
	require.Equal(t, "Grilled Paneer Tikka", got[0].Name)
	require.Equal(t, "Tofu Broccoli Stir Fry", got[1].Name)
}

func TestDishes_CartScenario(t *testing.T) {
	paneer, err := entity.FindDish(Dishes(), "1")
	require.NoError(t, err)

	cart := entity.AddToCart(nil, paneer)
	cart = entity.AddToCart(cart, paneer)
	require.Equal(t, 2, cart[0].Quantity)

	cart = entity.UpdateQuantity(cart, "1", -1)
	require.Equal(t, 1, cart[0].Quantity)

	cart = entity.UpdateQuantity(cart, "1", -1)
	require.Empty(t, cart)
}
