package entity

// Ingredient: строка состава блюда: название и вес в виде текста ("115g", "5ml").
type Ingredient struct {
	Name   string `json:"name"`
	Weight string `json:"weight"`
}

// Dish представляет блюдо каталога. Записи каталога неизменяемы.
type Dish struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Price         int          `json:"price"` // цена в рупиях, без копеек
	Kcal          int          `json:"kcal"`
	Protein       int          `json:"protein"`
	Carb          int          `json:"carb"`
	Fat           int          `json:"fat"`
	Fiber         int          `json:"fiber"`
	Image         string       `json:"image"`
	Tags          []string     `json:"tags"`
	IsVeg         bool         `json:"is_veg"`
	IsBestSeller  bool         `json:"is_best_seller"`
	IsHot         bool         `json:"is_hot"`
	IsHighProtein bool         `json:"is_high_protein"`
	Description   string       `json:"description,omitempty"`
	Ingredients   []Ingredient `json:"ingredients,omitempty"`
}

// TagGlutenFree: метка, по которой работает категория GlutenFree.
const TagGlutenFree = "Gluten Free"

// HasTag сообщает, есть ли у блюда указанная метка.
func (d Dish) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// FindDish ищет блюдо по ID. Если блюда нет, возвращает ErrNotFound.
func FindDish(catalog []Dish, id string) (Dish, error) {
	for _, d := range catalog {
		if d.ID == id {
			return d, nil
		}
	}
	return Dish{}, ErrNotFound
}
