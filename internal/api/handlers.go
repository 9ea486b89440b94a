package telegram

import (
	"context"
	"errors"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"boketto-bot/internal/domain/entity"
)

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	userID, chatID := msg.From.ID, msg.Chat.ID

	switch msg.Command() {
	case "start":
		b.c.Wizard.Teardown(userID)
		b.c.SortMenu.Close(sortKey(chatID))
		b.closeSortMenu(chatID)
		if err := b.c.Sessions.Reset(ctx, userID); err != nil {
			b.replyError(chatID, err)
			return
		}
		b.sendKeyboard(chatID, msgStart, hungerKeyboard())

	case "help":
		b.sendMessage(chatID, msgHelp)

	case "menu":
		if b.ensureHome(ctx, userID, chatID) {
			b.sendCatalog(ctx, userID, chatID)
		}

	case "search":
		if !b.ensureHome(ctx, userID, chatID) {
			return
		}
		view, err := b.c.Catalog.SetQuery(ctx, userID, chatID, msg.CommandArguments())
		if err != nil {
			b.replyError(chatID, err)
			return
		}
		b.sendKeyboard(chatID, catalogText(view), catalogKeyboard(view.Dishes, view.Filter))

	case "veg":
		if !b.ensureHome(ctx, userID, chatID) {
			return
		}
		view, err := b.c.Catalog.ToggleVeg(ctx, userID, chatID)
		if err != nil {
			b.replyError(chatID, err)
			return
		}
		b.sendKeyboard(chatID, catalogText(view), catalogKeyboard(view.Dishes, view.Filter))

	case "categories":
		if !b.ensureHome(ctx, userID, chatID) {
			return
		}
		view, err := b.c.Catalog.Browse(ctx, userID, chatID)
		if err != nil {
			b.replyError(chatID, err)
			return
		}
		b.sendKeyboard(chatID, msgCategories, categoryKeyboard(view.Filter.Category))

	case "sort":
		if !b.ensureHome(ctx, userID, chatID) {
			return
		}
		view, err := b.c.Catalog.Browse(ctx, userID, chatID)
		if err != nil {
			b.replyError(chatID, err)
			return
		}
		b.reopenSortMenu(chatID, view.Filter.Sort)

	case "cart":
		b.sendCart(ctx, userID, chatID)

	case "goal":
		b.handleGoalCommand(ctx, msg)

	case "suggest":
		b.sendKeyboard(chatID, msgSuggestPrompt, suggestKeyboard())

	case "login":
		session, err := b.c.Sessions.Get(ctx, userID, chatID)
		if err != nil {
			b.replyError(chatID, err)
			return
		}
		switch {
		case session.LoggedIn:
			b.sendMessage(chatID, msgAlreadyIn)
		case session.Step != entity.StepHome:
			b.sendMessage(chatID, msgLoginHomeOnly)
		default:
			if _, err := b.c.Wizard.OpenLogin(ctx, userID, chatID); err != nil {
				b.replyError(chatID, err)
			}
		}

	case "checkout":
		b.checkout(ctx, userID, chatID)

	case "orders":
		orders, err := b.c.Orders.History(ctx, userID)
		if err != nil {
			b.replyError(chatID, err)
			return
		}
		b.sendMessage(chatID, historyText(orders))

	case "cancel":
		_, err := b.c.Wizard.Close(ctx, userID, chatID)
		if errors.Is(err, entity.ErrInvalidTransition) {
			b.sendMessage(chatID, msgNothingCancel)
			return
		}
		if err != nil {
			b.replyError(chatID, err)
		}

	default:
		b.sendMessage(chatID, msgUnknown)
	}
}

// ensureHome пропускает команды каталога только после выбора уровня голода.
func (b *Bot) ensureHome(ctx context.Context, userID, chatID int64) bool {
	step, err := b.c.Wizard.Current(ctx, userID, chatID)
	if err != nil {
		b.replyError(chatID, err)
		return false
	}
	switch step {
	case entity.StepHungerSelect:
		b.sendKeyboard(chatID, msgPickHunger, hungerKeyboard())
		return false
	case entity.StepPreparing:
		b.sendMessage(chatID, msgPreparing)
		return false
	}
	return true
}

func (b *Bot) handleGoalCommand(ctx context.Context, msg *tgbotapi.Message) {
	userID, chatID := msg.From.ID, msg.Chat.ID

	var (
		goal entity.Goal
		err  error
	)
	if args := strings.TrimSpace(msg.CommandArguments()); args != "" {
		kcal, convErr := strconv.Atoi(args)
		if convErr != nil {
			b.sendMessage(chatID, msgBadKcal)
			return
		}
		goal, err = b.c.Goals.SetKcal(ctx, userID, chatID, kcal)
	} else {
		goal, err = b.c.Goals.Get(ctx, userID, chatID)
	}
	if err != nil {
		b.replyError(chatID, err)
		return
	}
	b.sendKeyboard(chatID, goalText(goal), goalKeyboard(goal.Preset))
}

func (b *Bot) sendCart(ctx context.Context, userID, chatID int64) {
	summary, err := b.c.Cart.Summary(ctx, userID, chatID)
	if err != nil {
		b.replyError(chatID, err)
		return
	}
	b.sendKeyboard(chatID, cartText(summary), cartKeyboard(summary.Items))
}

func (b *Bot) checkout(ctx context.Context, userID, chatID int64) {
	order, err := b.c.Orders.Checkout(ctx, userID, chatID)
	if err != nil {
		b.replyError(chatID, err)
		return
	}
	if len(order.Receipt) > 0 {
		b.sendPhoto(chatID, order.Receipt, orderText(order))
		return
	}
	b.sendMessage(chatID, orderText(order))
}

// handleText направляет свободный текст по шагу мастера; на остальных шагах это поиск.
func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message) {
	userID, chatID := msg.From.ID, msg.Chat.ID

	step, err := b.c.Wizard.Current(ctx, userID, chatID)
	if err != nil {
		b.replyError(chatID, err)
		return
	}

	switch step {
	case entity.StepIdentify:
		_, err = b.c.Wizard.SubmitContact(ctx, userID, chatID, msg.Text)
	case entity.StepOtpVerify:
		_, err = b.c.Wizard.SubmitCode(ctx, userID, chatID, msg.Text)
	case entity.StepProfile:
		_, err = b.c.Wizard.CompleteProfile(ctx, userID, chatID, msg.Text)
	case entity.StepHungerSelect:
		if _, err = b.c.Wizard.SelectHunger(ctx, userID, chatID, msg.Text); err != nil {
			b.sendKeyboard(chatID, msgPickHunger, hungerKeyboard())
			return
		}
	case entity.StepPreparing, entity.StepUnderstanding, entity.StepMatching, entity.StepWelcome:
		// Ждём таймер.
		return
	default:
		view, searchErr := b.c.Catalog.SetQuery(ctx, userID, chatID, msg.Text)
		if searchErr != nil {
			b.replyError(chatID, searchErr)
			return
		}
		b.sendKeyboard(chatID, catalogText(view), catalogKeyboard(view.Dishes, view.Filter))
		return
	}
	if err != nil {
		b.replyError(chatID, err)
	}
}

// handleCallback обрабатывает нажатия inline-кнопок
func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil || cq.From == nil {
		b.answer(cq.ID, "")
		return
	}
	userID, chatID := cq.From.ID, cq.Message.Chat.ID
	prefix, value, _ := strings.Cut(cq.Data, ":")
	prefix += ":"

	b.log.Debug("callback", zap.Int64("user_id", userID), zap.String("data", cq.Data))

	var (
		notice string
		err    error
	)
	switch prefix {
	case cbHunger:
		if _, err = b.c.Wizard.SelectHunger(ctx, userID, chatID, value); err == nil {
			b.edit(chatID, cq.Message.MessageID, msgStart, emptyKeyboard())
		}

	case cbDish:
		var dish entity.Dish
		if dish, err = b.c.Catalog.Select(ctx, userID, chatID, value); err == nil {
			b.sendKeyboard(chatID, dishText(dish), dishKeyboard(dish))
		}

	case cbAdd:
		summary, addErr := b.c.Cart.Add(ctx, userID, chatID, value)
		if err = addErr; err == nil {
			notice = addedText(summary)
		}

	case cbInc, cbDec:
		delta := 1
		if prefix == cbDec {
			delta = -1
		}
		summary, updErr := b.c.Cart.Update(ctx, userID, chatID, value, delta)
		if err = updErr; err == nil {
			b.edit(chatID, cq.Message.MessageID, cartText(summary), cartKeyboard(summary.Items))
		}

	case cbCart:
		switch value {
		case "checkout":
			b.checkout(ctx, userID, chatID)
		default:
			b.sendCart(ctx, userID, chatID)
		}

	case cbVeg:
		if _, err = b.c.Catalog.ToggleVeg(ctx, userID, chatID); err == nil {
			b.editCatalog(ctx, cq.Message, userID)
		}

	case cbCategory:
		err = b.handleCategory(ctx, cq, value)

	case cbSort:
		err = b.handleSort(ctx, cq, value)

	case cbGoal:
		err = b.handleGoal(ctx, cq, value)

	case cbPref:
		session, prefErr := b.c.Wizard.TogglePreference(ctx, userID, chatID, value)
		if err = prefErr; err == nil {
			prefs := session.Draft.Preferences
			b.edit(chatID, cq.Message.MessageID, prefsText(prefs), prefsKeyboard(prefs))
		}

	case cbWizard:
		switch value {
		case "continue":
			_, err = b.c.Wizard.Continue(ctx, userID, chatID)
		case "skip":
			_, err = b.c.Wizard.Skip(ctx, userID, chatID)
		case "close":
			_, err = b.c.Wizard.Close(ctx, userID, chatID)
		default:
			err = entity.ErrInvalidTransition
		}
		if err == nil {
			b.edit(chatID, cq.Message.MessageID, cq.Message.Text, emptyKeyboard())
		}

	case cbSuggest:
		b.sendMessage(chatID, msgSuggesting)
		suggestions, sugErr := b.c.Recommendations.Suggest(ctx, userID, chatID)
		if err = sugErr; err == nil {
			b.sendMessage(chatID, suggestionsText(suggestions))
		}

	default:
		b.log.Warn("unknown callback", zap.String("data", cq.Data))
	}

	if err != nil {
		b.answer(cq.ID, errorText(err))
		if errorText(err) == errMsgInternal {
			b.log.Error("callback failed", zap.String("data", cq.Data), zap.Error(err))
		}
		return
	}
	b.answer(cq.ID, notice)
}

func (b *Bot) handleCategory(ctx context.Context, cq *tgbotapi.CallbackQuery, value string) error {
	userID, chatID := cq.From.ID, cq.Message.Chat.ID
	if value == "menu" {
		view, err := b.c.Catalog.Browse(ctx, userID, chatID)
		if err != nil {
			return err
		}
		b.sendKeyboard(chatID, msgCategories, categoryKeyboard(view.Filter.Category))
		return nil
	}

	c, ok := entity.ParseCategory(value)
	if !ok {
		return entity.ErrNotFound
	}
	view, err := b.c.Catalog.SetCategory(ctx, userID, chatID, c)
	if err != nil {
		return err
	}
	b.edit(chatID, cq.Message.MessageID, catalogText(view), catalogKeyboard(view.Dishes, view.Filter))
	return nil
}

// handleSort применяет сортировку; каждое нажатие продлевает жизнь меню.
func (b *Bot) handleSort(ctx context.Context, cq *tgbotapi.CallbackQuery, value string) error {
	userID, chatID := cq.From.ID, cq.Message.Chat.ID
	if value == "menu" {
		view, err := b.c.Catalog.Browse(ctx, userID, chatID)
		if err != nil {
			return err
		}
		b.reopenSortMenu(chatID, view.Filter.Sort)
		return nil
	}

	order, ok := entity.ParseSortOrder(value)
	if !ok {
		return entity.ErrNotFound
	}
	view, err := b.c.Catalog.SetSort(ctx, userID, chatID, order)
	if err != nil {
		return err
	}
	b.openSortMenu(chatID, order, cq.Message.MessageID)
	b.edit(chatID, cq.Message.MessageID, msgSortMenu, sortKeyboard(order))
	b.sendKeyboard(chatID, catalogText(view), catalogKeyboard(view.Dishes, view.Filter))
	return nil
}

func (b *Bot) handleGoal(ctx context.Context, cq *tgbotapi.CallbackQuery, value string) error {
	userID, chatID := cq.From.ID, cq.Message.Chat.ID

	var (
		goal entity.Goal
		err  error
	)
	if value == "reset" {
		goal, err = b.c.Goals.Reset(ctx, userID, chatID)
	} else {
		preset, ok := entity.ParseGoalPreset(value)
		if !ok {
			return entity.ErrNotFound
		}
		goal, err = b.c.Goals.SetPreset(ctx, userID, chatID, preset)
	}
	if err != nil {
		return err
	}
	b.edit(chatID, cq.Message.MessageID, goalText(goal), goalKeyboard(goal.Preset))
	return nil
}
