package entity

import (
	"slices"
	"strings"
)

// Category: вкладка фильтра каталога.
type Category string

const (
	CategoryAll         Category = "all"
	CategoryForYou      Category = "for_you"
	CategoryHighProtein Category = "high_protein"
	CategoryVerified    Category = "verified"
	CategorySignature   Category = "signature"
	CategoryLowKcal     Category = "low_kcal"
	CategoryGlutenFree  Category = "gluten_free"
)

// LowKcalLimit: блюда строго ниже этого порога попадают в LowKcal.
const LowKcalLimit = 500

// Categories перечисляет категории в порядке показа.
var Categories = []Category{
	CategoryAll,
	CategoryForYou,
	CategoryHighProtein,
	CategoryVerified,
	CategorySignature,
	CategoryLowKcal,
	CategoryGlutenFree,
}

var categoryLabels = map[Category]string{
	CategoryAll:         "All",
	CategoryForYou:      "For You",
	CategoryHighProtein: "High Protein",
	CategoryVerified:    "Verified",
	CategorySignature:   "Signature",
	CategoryLowKcal:     "Low Kcal",
	CategoryGlutenFree:  "Gluten Free",
}

// Label возвращает подпись категории для интерфейса.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// ParseCategory принимает как ключ ("low_kcal"), так и подпись ("Low Kcal").
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, c.Label()) {
			return c, true
		}
	}
	return "", false
}

// Match проверяет предикат категории. All, ForYou, Verified и Signature пропускают всё.
func (c Category) Match(d Dish) bool {
	switch c {
	case CategoryHighProtein:
		return d.IsHighProtein
	case CategoryLowKcal:
		return d.Kcal < LowKcalLimit
	case CategoryGlutenFree:
		return d.HasTag(TagGlutenFree)
	default:
		return true
	}
}

// SortOrder: порядок сортировки по цене.
type SortOrder string

const (
	SortNone      SortOrder = ""
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
)

// ParseSortOrder разбирает значение из callback-данных.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch SortOrder(strings.TrimSpace(s)) {
	case SortNone, "none":
		return SortNone, true
	case SortPriceAsc:
		return SortPriceAsc, true
	case SortPriceDesc:
		return SortPriceDesc, true
	}
	return "", false
}

// FilterState: текущий выбор поиска, вегетарианского режима, категории и сортировки.
type FilterState struct {
	SearchQuery string    `json:"search_query"`
	VegOnly     bool      `json:"veg_only"`
	Category    Category  `json:"category"`
	Sort        SortOrder `json:"sort"`
}

// DefaultFilter возвращает фильтр, который показывает весь каталог.
func DefaultFilter() FilterState {
	return FilterState{Category: CategoryAll}
}

// Match проверяет все активные предикаты фильтра.
func (f FilterState) Match(d Dish) bool {
	if f.SearchQuery != "" && !strings.Contains(strings.ToLower(d.Name), strings.ToLower(f.SearchQuery)) {
		return false
	}
	if f.VegOnly && !d.IsVeg {
		return false
	}
	return f.Category.Match(d)
}

// FilterAndSort отбирает блюда под фильтр и сортирует копию по цене.
// Входной срез не изменяется; пустой результат допустим.
func FilterAndSort(catalog []Dish, f FilterState) []Dish {
	out := make([]Dish, 0, len(catalog))
	for _, d := range catalog {
		if f.Match(d) {
			out = append(out, d)
		}
	}

	switch f.Sort {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b Dish) int { return a.Price - b.Price })
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b Dish) int { return b.Price - a.Price })
	}
	return out
}
