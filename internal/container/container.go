package container

import (
	"go.uber.org/zap"

	app "boketto-bot/internal/application"
	"boketto-bot/internal/domain/entity"
	"boketto-bot/internal/domain/port"
)

// Deps: внешние зависимости, которые собирает main.
type Deps struct {
	Sessions    port.SessionRepository
	Orders      port.OrderRepository
	Recommender port.Recommender
	Verifier    port.CodeVerifier
	Receipt     port.ReceiptEncoder
	Scheduler   port.Scheduler
	Catalog     []entity.Dish
	SortMenu    port.Debouncer // сворачивание меню сортировки
}

type Container struct {
	Sessions        *app.SessionService
	Catalog         *app.CatalogService
	Cart            *app.CartService
	Goals           *app.GoalService
	Wizard          *app.WizardService
	Recommendations *app.RecommendationService
	Orders          *app.OrderService
	SortMenu        port.Debouncer
}

func New(deps Deps, log *zap.Logger) *Container {
	sessions := app.NewSessionService(deps.Sessions)
	catalog := app.NewCatalogService(sessions, deps.Catalog)
	goals := app.NewGoalService(sessions)

	return &Container{
		Sessions:        sessions,
		Catalog:         catalog,
		Cart:            app.NewCartService(sessions, catalog, log),
		Goals:           goals,
		Wizard:          app.NewWizardService(sessions, deps.Verifier, deps.Scheduler, log),
		Recommendations: app.NewRecommendationService(goals, deps.Recommender, log),
		Orders:          app.NewOrderService(sessions, deps.Orders, deps.Receipt, log),
		SortMenu:        deps.SortMenu,
	}
}
