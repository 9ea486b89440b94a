package app

import (
	"context"
	"strings"

	"boketto-bot/internal/domain/entity"
)

// CatalogView: то, что показывает главный экран.
type CatalogView struct {
	Filter entity.FilterState
	Dishes []entity.Dish
}

// CatalogService применяет фильтры сессии к статическому каталогу.
type CatalogService struct {
	sessions *SessionService
	catalog  []entity.Dish
}

func NewCatalogService(sessions *SessionService, catalog []entity.Dish) *CatalogService {
	return &CatalogService{sessions: sessions, catalog: catalog}
}

// Dishes возвращает весь каталог.
func (s *CatalogService) Dishes() []entity.Dish {
	return s.catalog
}

// Dish ищет блюдо; entity.ErrNotFound означает "показывать нечего".
func (s *CatalogService) Dish(id string) (entity.Dish, error) {
	return entity.FindDish(s.catalog, id)
}

func (s *CatalogService) view(session *entity.Session) CatalogView {
	return CatalogView{
		Filter: session.Filter,
		Dishes: entity.FilterAndSort(s.catalog, session.Filter),
	}
}

// Browse возвращает каталог по текущему фильтру сессии.
func (s *CatalogService) Browse(ctx context.Context, userID, chatID int64) (CatalogView, error) {
	session, err := s.sessions.Get(ctx, userID, chatID)
	if err != nil {
		return CatalogView{}, err
	}
	return s.view(session), nil
}

func (s *CatalogService) updateFilter(ctx context.Context, userID, chatID int64, fn func(*entity.FilterState)) (CatalogView, error) {
	session, err := s.sessions.Update(ctx, userID, chatID, func(session *entity.Session) error {
		fn(&session.Filter)
		return nil
	})
	if err != nil {
		return CatalogView{}, err
	}
	return s.view(session), nil
}

func (s *CatalogService) SetQuery(ctx context.Context, userID, chatID int64, query string) (CatalogView, error) {
	return s.updateFilter(ctx, userID, chatID, func(f *entity.FilterState) {
		f.SearchQuery = strings.TrimSpace(query)
	})
}

func (s *CatalogService) ToggleVeg(ctx context.Context, userID, chatID int64) (CatalogView, error) {
	return s.updateFilter(ctx, userID, chatID, func(f *entity.FilterState) {
		f.VegOnly = !f.VegOnly
	})
}

func (s *CatalogService) SetCategory(ctx context.Context, userID, chatID int64, c entity.Category) (CatalogView, error) {
	return s.updateFilter(ctx, userID, chatID, func(f *entity.FilterState) {
		f.Category = c
	})
}

func (s *CatalogService) SetSort(ctx context.Context, userID, chatID int64, order entity.SortOrder) (CatalogView, error) {
	return s.updateFilter(ctx, userID, chatID, func(f *entity.FilterState) {
		f.Sort = order
	})
}

// Select запоминает блюдо, открытое в карточке.
func (s *CatalogService) Select(ctx context.Context, userID, chatID int64, dishID string) (entity.Dish, error) {
	dish, err := s.Dish(dishID)
	if err != nil {
		return entity.Dish{}, err
	}
	_, err = s.sessions.Update(ctx, userID, chatID, func(session *entity.Session) error {
		session.SelectedDishID = dish.ID
		return nil
	})
	if err != nil {
		return entity.Dish{}, err
	}
	return dish, nil
}
