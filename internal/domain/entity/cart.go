package entity

// CartItem: блюдо в корзине с количеством (всегда больше нуля).
type CartItem struct {
	Dish
	Quantity int `json:"quantity"`
}

// Cart хранит позиции в порядке первого добавления.
type Cart []CartItem

// Macros: суммарная пищевая ценность.
type Macros struct {
	Kcal    int
	Protein int
	Carb    int
	Fat     int
}

// AddToCart увеличивает количество существующей позиции на 1 (позиция не меняется)
// или добавляет новую позицию в конец. Исходная корзина не изменяется.
func AddToCart(cart Cart, dish Dish) Cart {
	out := make(Cart, len(cart), len(cart)+1)
	copy(out, cart)
	for i := range out {
		if out[i].ID == dish.ID {
			out[i].Quantity++
			return out
		}
	}
	return append(out, CartItem{Dish: dish, Quantity: 1})
}

// UpdateQuantity меняет количество на delta. Позиция с нулевым количеством удаляется,
// неизвестный id: no-op.
func UpdateQuantity(cart Cart, id string, delta int) Cart {
	idx := -1
	for i := range cart {
		if cart[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return cart
	}

	qty := max(0, cart[idx].Quantity+delta)
	out := make(Cart, 0, len(cart))
	for i, item := range cart {
		if i == idx {
			if qty == 0 {
				continue
			}
			item.Quantity = qty
		}
		out = append(out, item)
	}
	return out
}

// TotalItemCount: сумма количеств.
func TotalItemCount(cart Cart) int {
	n := 0
	for _, item := range cart {
		n += item.Quantity
	}
	return n
}

// TotalPrice: сумма price × quantity.
func TotalPrice(cart Cart) int {
	total := 0
	for _, item := range cart {
		total += item.Price * item.Quantity
	}
	return total
}

// TotalMacros суммирует БЖУ и калории корзины с учётом количества.
func TotalMacros(cart Cart) Macros {
	var m Macros
	for _, item := range cart {
		m.Kcal += item.Kcal * item.Quantity
		m.Protein += item.Protein * item.Quantity
		m.Carb += item.Carb * item.Quantity
		m.Fat += item.Fat * item.Quantity
	}
	return m
}
