package telegram

import (
	"errors"
	"fmt"
	"strings"

	app "boketto-bot/internal/application"
	"boketto-bot/internal/domain/entity"
)

const (
	msgStart = `👋 Welcome to Boketto!

Tell us how hungry you are and we'll prepare a menu for tonight.`

	msgHelp = `ℹ️ How it works:

1️⃣ Pick your hunger level
2️⃣ Browse the menu, filter and sort it
3️⃣ Add dishes to the cart and check out

📋 Commands:
/menu — show the menu
/search <text> — search dishes by name
/veg — toggle veg only
/categories — pick a category
/sort — sort by price
/cart — your cart
/goal [kcal] — dinner goal
/suggest — AI dinner suggestions
/login — sign in
/checkout — place the order
/orders — order history
/cancel — leave sign in
/start — start over`

	msgPreparing     = "⏳ Preparing your menu..."
	msgIdentify      = "📱 Enter your phone number or email."
	msgProfile       = "🙂 What should we call you? Send your name or skip."
	msgUnderstanding = "🧠 Understanding your taste..."
	msgMatching      = "🍽 Matching dishes for you..."
	msgPickHunger    = "First, how hungry are you?"
	msgCategories    = "📂 Pick a category:"
	msgSortMenu      = "↕️ Sort by price:"
	msgSortClosed    = "↕️ Sort menu closed. Send /sort to open it again."
	msgSuggestPrompt = "✨ Get dinner ideas that fit your goal."
	msgSuggesting    = "⏳ Asking the chef..."
	msgNoOrders      = "📭 No orders yet."
	msgEmptyResult   = "🤷 No dishes match your filters."
	msgNothingCancel = "Nothing to cancel."
	msgLoginHomeOnly = "Open the menu first, then sign in."
	msgAlreadyIn     = "✅ You are already signed in."
	msgUnknown       = "❓ Unknown command. Use /help."
	msgBadKcal       = "⚠️ Goal must be a positive number of kcal, e.g. /goal 650"

	errMsgNotFound     = "⚠️ Dish not found."
	errMsgInvalidCode  = "❌ Wrong code. Try again."
	errMsgMalformed    = "⚠️ The code must be exactly 4 digits."
	errMsgEmptyContact = "⚠️ Please enter a phone number or email."
	errMsgTransition   = "⚠️ That action isn't available right now."
	errMsgRecommend    = "😔 Suggestions are unavailable right now. Try again later."
	errMsgEmptyCart    = "🛒 Your cart is empty."
	errMsgInternal     = "⚠️ Something went wrong. Try again."
)

// errorText переводит ошибку сервиса в сообщение для пользователя.
func errorText(err error) string {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return errMsgNotFound
	case errors.Is(err, entity.ErrInvalidCode):
		return errMsgInvalidCode
	case errors.Is(err, entity.ErrMalformedCode):
		return errMsgMalformed
	case errors.Is(err, entity.ErrEmptyContact):
		return errMsgEmptyContact
	case errors.Is(err, entity.ErrInvalidTransition):
		return errMsgTransition
	case errors.Is(err, entity.ErrRecommendationUnavailable):
		return errMsgRecommend
	case errors.Is(err, entity.ErrEmptyCart):
		return errMsgEmptyCart
	case errors.Is(err, app.ErrInvalidKcal):
		return msgBadKcal
	}
	return errMsgInternal
}

func rupees(v int) string {
	return fmt.Sprintf("₹%d", v)
}

func dishBadges(d entity.Dish) string {
	var b []string
	if d.IsVeg {
		b = append(b, "🟢")
	} else {
		b = append(b, "🔴")
	}
	if d.IsBestSeller {
		b = append(b, "⭐")
	}
	if d.IsHot {
		b = append(b, "🔥")
	}
	if d.IsHighProtein {
		b = append(b, "💪")
	}
	return strings.Join(b, "")
}

func filterSummary(f entity.FilterState) string {
	parts := []string{f.Category.Label()}
	if f.VegOnly {
		parts = append(parts, "veg only")
	}
	if f.SearchQuery != "" {
		parts = append(parts, fmt.Sprintf("%q", f.SearchQuery))
	}
	switch f.Sort {
	case entity.SortPriceAsc:
		parts = append(parts, "price ↑")
	case entity.SortPriceDesc:
		parts = append(parts, "price ↓")
	}
	return strings.Join(parts, " · ")
}

func catalogText(view app.CatalogView) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🍽 Menu (%s)\n", filterSummary(view.Filter))
	if len(view.Dishes) == 0 {
		sb.WriteString("\n" + msgEmptyResult)
		return sb.String()
	}
	for _, d := range view.Dishes {
		fmt.Fprintf(&sb, "\n%s %s\n   %s · %d kcal · P%d C%d F%d\n",
			dishBadges(d), d.Name, rupees(d.Price), d.Kcal, d.Protein, d.Carb, d.Fat)
	}
	return sb.String()
}

func dishText(d entity.Dish) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s — %s\n", dishBadges(d), d.Name, rupees(d.Price))
	fmt.Fprintf(&sb, "%d kcal · protein %dg · carbs %dg · fat %dg · fiber %dg\n",
		d.Kcal, d.Protein, d.Carb, d.Fat, d.Fiber)
	if len(d.Tags) > 0 {
		fmt.Fprintf(&sb, "🏷 %s\n", strings.Join(d.Tags, ", "))
	}
	if d.Description != "" {
		fmt.Fprintf(&sb, "\n%s\n", d.Description)
	}
	if len(d.Ingredients) > 0 {
		sb.WriteString("\nIngredients:\n")
		for _, in := range d.Ingredients {
			fmt.Fprintf(&sb, "• %s %s\n", in.Name, in.Weight)
		}
	}
	return sb.String()
}

func progressText(p entity.GoalProgress) string {
	return fmt.Sprintf("🎯 %s goal: %d / %d kcal (%d%%), %d kcal left",
		p.Goal.Preset, p.Consumed.Kcal, p.Goal.Kcal, p.Percent(), p.RemainingKcal)
}

func cartText(s app.CartSummary) string {
	if len(s.Items) == 0 {
		return errMsgEmptyCart + "\n" + progressText(s.Progress)
	}
	var sb strings.Builder
	sb.WriteString("🛒 Your cart\n")
	for _, item := range s.Items {
		fmt.Fprintf(&sb, "\n%s × %d — %s", item.Name, item.Quantity, rupees(item.Price*item.Quantity))
	}
	fmt.Fprintf(&sb, "\n\nItems: %d\nTotal: %s\n", s.Count, rupees(s.Total))
	m := s.Progress.Consumed
	fmt.Fprintf(&sb, "%d kcal · P%d C%d F%d\n", m.Kcal, m.Protein, m.Carb, m.Fat)
	sb.WriteString(progressText(s.Progress))
	return sb.String()
}

func addedText(s app.CartSummary) string {
	return fmt.Sprintf("Added! %d items · %s", s.Count, rupees(s.Total))
}

func goalText(g entity.Goal) string {
	return fmt.Sprintf("🎯 Dinner goal: %s\n%d kcal · protein %dg · carbs %dg · fat %dg\n\nSend /goal <kcal> to change calories.",
		g.Preset, g.Kcal, g.Protein, g.Carbs, g.Fat)
}

func suggestionsText(list []entity.Suggestion) string {
	var sb strings.Builder
	sb.WriteString("✨ Dinner ideas")
	for _, s := range list {
		fmt.Fprintf(&sb, "\n\n%s\n%s", s.Name, s.Reason)
		if s.Macros != "" {
			fmt.Fprintf(&sb, "\n%s", s.Macros)
		}
	}
	return sb.String()
}

func orderText(o *entity.Order) string {
	return fmt.Sprintf("✅ Order placed!\nID: %s\nItems: %d\nTotal: %s",
		o.ID, o.ItemCount, rupees(o.Total))
}

func historyText(orders []entity.Order) string {
	if len(orders) == 0 {
		return msgNoOrders
	}
	var sb strings.Builder
	sb.WriteString("📜 Your orders")
	for _, o := range orders {
		fmt.Fprintf(&sb, "\n\n%s · %s\n%d items · %s",
			o.CreatedAt.Format("02 Jan 15:04"), o.ID, o.ItemCount, rupees(o.Total))
	}
	return sb.String()
}

func otpText(contact string) string {
	return fmt.Sprintf("🔐 Enter the 4-digit code sent to %s.", contact)
}

func prefsText(selected []string) string {
	if len(selected) == 0 {
		return "🥦 Any ingredient preferences? Tap to select."
	}
	return "🥦 Selected: " + strings.Join(selected, ", ")
}

func welcomeText(p entity.Profile) string {
	if p.Name == "" {
		return "👋 Welcome back!"
	}
	return fmt.Sprintf("👋 Welcome back, %s!", p.Name)
}
