package telegram

import (
	"context"
	"strconv"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"boketto-bot/internal/container"
	"boketto-bot/internal/domain/entity"
	"boketto-bot/internal/metrics"
)

// sender: часть tgbotapi.BotAPI, которой пользуется бот.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Bot представляет Telegram-бота
type Bot struct {
	api sender
	tg  *tgbotapi.BotAPI
	c   *container.Container
	log *zap.Logger

	mu       sync.Mutex
	sortMsgs map[int64]int // chatID -> сообщение с открытым меню сортировки
}

// NewBot создаёт нового бота
func NewBot(token string, c *container.Container, log *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Info("authorized on account", zap.String("username", api.Self.UserName))

	b := newBot(api, c, log)
	b.tg = api
	return b, nil
}

func newBot(api sender, c *container.Container, log *zap.Logger) *Bot {
	b := &Bot{
		api:      api,
		c:        c,
		log:      log.Named("telegram"),
		sortMsgs: make(map[int64]int),
	}
	c.Wizard.OnAdvance(b.onStepChanged)
	return b
}

var commands = []tgbotapi.BotCommand{
	{Command: "menu", Description: "Show the menu"},
	{Command: "search", Description: "Search dishes by name"},
	{Command: "veg", Description: "Toggle veg only"},
	{Command: "categories", Description: "Pick a category"},
	{Command: "sort", Description: "Sort by price"},
	{Command: "cart", Description: "Your cart"},
	{Command: "goal", Description: "Dinner goal"},
	{Command: "suggest", Description: "AI dinner suggestions"},
	{Command: "login", Description: "Sign in"},
	{Command: "checkout", Description: "Place the order"},
	{Command: "orders", Description: "Order history"},
	{Command: "cancel", Description: "Leave sign in"},
	{Command: "start", Description: "Start over"},
	{Command: "help", Description: "Help"},
}

// Run запускает основной цикл обработки сообщений до отмены ctx
func (b *Bot) Run(ctx context.Context) error {
	if _, err := b.api.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		b.log.Warn("set commands failed", zap.Error(err))
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.tg.GetUpdatesChan(u)
	defer b.tg.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate обрабатывает одно обновление
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		metrics.UpdatesTotal.WithLabelValues("callback").Inc()
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.From != nil:
		if update.Message.IsCommand() {
			metrics.UpdatesTotal.WithLabelValues("command").Inc()
			b.handleCommand(ctx, update.Message)
			return
		}
		metrics.UpdatesTotal.WithLabelValues("text").Inc()
		b.handleText(ctx, update.Message)
	default:
		metrics.UpdatesTotal.WithLabelValues("ignored").Inc()
	}
}

// onStepChanged показывает экран нового шага мастера.
// Вызывается и из обработчиков, и из таймеров.
func (b *Bot) onStepChanged(session *entity.Session, from entity.Step) {
	ctx := context.Background()
	chatID := session.ChatID

	switch session.Step {
	case entity.StepPreparing:
		b.sendMessage(chatID, msgPreparing)
	case entity.StepHome:
		b.sendCatalog(ctx, session.UserID, chatID)
	case entity.StepIdentify:
		b.sendKeyboard(chatID, msgIdentify, loginKeyboard())
	case entity.StepOtpVerify:
		b.sendKeyboard(chatID, otpText(session.Contact), loginKeyboard())
	case entity.StepProfile:
		b.sendKeyboard(chatID, msgProfile, profileKeyboard())
	case entity.StepIngredientPrefs:
		b.sendKeyboard(chatID, prefsText(session.Draft.Preferences), prefsKeyboard(session.Draft.Preferences))
	case entity.StepUnderstanding:
		b.sendMessage(chatID, msgUnderstanding)
	case entity.StepMatching:
		b.sendMessage(chatID, msgMatching)
	case entity.StepWelcome:
		b.sendMessage(chatID, welcomeText(session.Profile))
	}
}

func (b *Bot) sendCatalog(ctx context.Context, userID, chatID int64) {
	view, err := b.c.Catalog.Browse(ctx, userID, chatID)
	if err != nil {
		b.replyError(chatID, err)
		return
	}
	b.sendKeyboard(chatID, catalogText(view), catalogKeyboard(view.Dishes, view.Filter))
}

func (b *Bot) editCatalog(ctx context.Context, msg *tgbotapi.Message, userID int64) {
	view, err := b.c.Catalog.Browse(ctx, userID, msg.Chat.ID)
	if err != nil {
		b.replyError(msg.Chat.ID, err)
		return
	}
	b.edit(msg.Chat.ID, msg.MessageID, catalogText(view), catalogKeyboard(view.Dishes, view.Filter))
}

// sortKey: ключ debounce меню сортировки.
func sortKey(chatID int64) string {
	return "sort:" + strconv.FormatInt(chatID, 10)
}

// openSortMenu показывает меню сортировки и (пере)запускает таймер его сворачивания.
func (b *Bot) openSortMenu(chatID int64, current entity.SortOrder, messageID int) {
	key := sortKey(chatID)
	b.c.SortMenu.Enter(key, func() {
		if messageID == 0 {
			sent, err := b.api.Send(withMarkup(tgbotapi.NewMessage(chatID, msgSortMenu), sortKeyboard(current)))
			if err != nil {
				b.log.Error("send sort menu failed", zap.Int64("chat_id", chatID), zap.Error(err))
				return
			}
			messageID = sent.MessageID
		}
		b.mu.Lock()
		b.sortMsgs[chatID] = messageID
		b.mu.Unlock()
	})
	b.c.SortMenu.Leave(key, func() { b.closeSortMenu(chatID) })
}

// reopenSortMenu сворачивает прежнее меню сортировки и присылает новое.
func (b *Bot) reopenSortMenu(chatID int64, current entity.SortOrder) {
	b.c.SortMenu.Close(sortKey(chatID))
	b.closeSortMenu(chatID)
	b.openSortMenu(chatID, current, 0)
}

func (b *Bot) closeSortMenu(chatID int64) {
	b.mu.Lock()
	messageID, ok := b.sortMsgs[chatID]
	delete(b.sortMsgs, chatID)
	b.mu.Unlock()
	if !ok {
		return
	}
	b.edit(chatID, messageID, msgSortClosed, emptyKeyboard())
}

func withMarkup(msg tgbotapi.MessageConfig, kb tgbotapi.InlineKeyboardMarkup) tgbotapi.MessageConfig {
	msg.ReplyMarkup = kb
	return msg
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.log.Error("send message failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (b *Bot) sendKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	if _, err := b.api.Send(withMarkup(tgbotapi.NewMessage(chatID, text), kb)); err != nil {
		b.log.Error("send message failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (b *Bot) edit(chatID int64, messageID int, text string, kb tgbotapi.InlineKeyboardMarkup) {
	if _, err := b.api.Request(tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, kb)); err != nil {
		// Telegram отвечает ошибкой, если текст не изменился.
		b.log.Debug("edit message failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (b *Bot) sendPhoto(chatID int64, png []byte, caption string) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "receipt.png", Bytes: png})
	photo.Caption = caption
	if _, err := b.api.Send(photo); err != nil {
		b.log.Error("send photo failed", zap.Int64("chat_id", chatID), zap.Error(err))
		b.sendMessage(chatID, caption)
	}
}

func (b *Bot) answer(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		b.log.Debug("answer callback failed", zap.Error(err))
	}
}

// replyError показывает ошибку пользователю. Неожиданные ошибки логируются.
func (b *Bot) replyError(chatID int64, err error) {
	text := errorText(err)
	if text == errMsgInternal {
		b.log.Error("request failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
	b.sendMessage(chatID, text)
}
