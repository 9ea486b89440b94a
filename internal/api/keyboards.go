package telegram

import (
	"fmt"
	"slices"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"boketto-bot/internal/domain/entity"
)

// Префиксы callback-данных.
const (
	cbHunger   = "hunger:"
	cbDish     = "dish:"
	cbAdd      = "add:"
	cbInc      = "inc:"
	cbDec      = "dec:"
	cbCategory = "cat:"
	cbSort     = "sort:"
	cbGoal     = "goal:"
	cbPref     = "pref:"
	cbWizard   = "wiz:"
	cbSuggest  = "suggest:"
	cbVeg      = "veg:"
	cbCart     = "cart:"
)

func button(text, data string) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(text, data)
}

func emptyKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}}
}

func hungerKeyboard() tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(entity.HungerLevels))
	for _, l := range entity.HungerLevels {
		row = append(row, button(string(l), cbHunger+string(l)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

func catalogKeyboard(dishes []entity.Dish, f entity.FilterState) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(dishes)+2)
	for _, d := range dishes {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			button(d.Name, cbDish+d.ID),
			button("➕ "+rupees(d.Price), cbAdd+d.ID),
		))
	}

	veg := "🟢 Veg: off"
	if f.VegOnly {
		veg = "🟢 Veg: on"
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			button(veg, cbVeg+"toggle"),
			button("📂 "+f.Category.Label(), cbCategory+"menu"),
			button("↕️ Sort", cbSort+"menu"),
		),
		tgbotapi.NewInlineKeyboardRow(button("🛒 Cart", cbCart+"show")),
	)
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func dishKeyboard(d entity.Dish) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(button("➕ Add to cart · "+rupees(d.Price), cbAdd+d.ID)),
	)
}

func categoryKeyboard(current entity.Category) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for chunk := range slices.Chunk(entity.Categories, 2) {
		row := make([]tgbotapi.InlineKeyboardButton, 0, len(chunk))
		for _, c := range chunk {
			label := c.Label()
			if c == current {
				label = "✓ " + label
			}
			row = append(row, button(label, cbCategory+string(c)))
		}
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func sortKeyboard(current entity.SortOrder) tgbotapi.InlineKeyboardMarkup {
	opts := []struct {
		label string
		order entity.SortOrder
		data  string
	}{
		{"Relevance", entity.SortNone, "none"},
		{"Price: low to high", entity.SortPriceAsc, string(entity.SortPriceAsc)},
		{"Price: high to low", entity.SortPriceDesc, string(entity.SortPriceDesc)},
	}
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(opts))
	for _, o := range opts {
		label := o.label
		if o.order == current {
			label = "✓ " + label
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button(label, cbSort+o.data)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func cartKeyboard(cart entity.Cart) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(cart)+1)
	for _, item := range cart {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			button("➖", cbDec+item.ID),
			button(fmt.Sprintf("%s × %d", item.Name, item.Quantity), cbDish+item.ID),
			button("➕", cbInc+item.ID),
		))
	}
	if len(cart) > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button("✅ Checkout", cbCart+"checkout")))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func goalKeyboard(current entity.GoalPreset) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for chunk := range slices.Chunk(entity.GoalPresets, 2) {
		row := make([]tgbotapi.InlineKeyboardButton, 0, len(chunk))
		for _, p := range chunk {
			label := string(p)
			if p == current {
				label = "✓ " + label
			}
			row = append(row, button(label, cbGoal+string(p)))
		}
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(button("↩️ Reset", cbGoal+"reset")))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func suggestKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(button("✨ Generate", cbSuggest+"generate")),
	)
}

func closeRow() []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(button("✖️ Close", cbWizard+"close"))
}

func loginKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(closeRow())
}

func profileKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			button("Continue", cbWizard+"continue"),
			button("Skip", cbWizard+"skip"),
		),
		closeRow(),
	)
}

func prefsKeyboard(selected []string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for chunk := range slices.Chunk(entity.IngredientOptions, 2) {
		row := make([]tgbotapi.InlineKeyboardButton, 0, len(chunk))
		for _, opt := range chunk {
			label := opt
			if slices.Contains(selected, opt) {
				label = "✓ " + opt
			}
			row = append(row, button(label, cbPref+opt))
		}
		rows = append(rows, row)
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			button("Continue", cbWizard+"continue"),
			button("Skip", cbWizard+"skip"),
		),
		closeRow(),
	)
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
