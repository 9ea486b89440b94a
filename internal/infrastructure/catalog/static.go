// Package catalog содержит статический каталог блюд Boketto.
package catalog

import "boketto-bot/internal/domain/entity"

// Dishes возвращает свежую копию каталога. Вызывающий может менять результат,
// не затрагивая другие вызовы.
func Dishes() []entity.Dish {
	out := make([]entity.Dish, len(dishes))
	for i, d := range dishes {
		d.Tags = append([]string(nil), d.Tags...)
		d.Ingredients = append([]entity.Ingredient(nil), d.Ingredients...)
		out[i] = d
	}
	return out
}

var dishes = []entity.Dish{
	{
		ID:            "1",
		Name:          "Grilled Paneer Tikka",
		Price:         240,
		Kcal:          634,
		Protein:       25,
		Carb:          23,
		Fat:           52,
		Fiber:         1,
		Image:         "https://picsum.photos/seed/tikka/400/400",
		Tags:          []string{"Rich Calcium"},
		IsVeg:         true,
		IsBestSeller:  true,
		IsHot:         true,
		IsHighProtein: true,
		Description:   "Grilled paneer tikka is a popular Indian vegetarian starter featuring marinated cubes of paneer and vegetables, skewered and grilled to perfection.",
		Ingredients: []entity.Ingredient{
			{Name: "Amul fresh paneer", Weight: "115g"},
			{Name: "Yogurt", Weight: "29g"},
			{Name: "Bell peppers green", Weight: "14g"},
			{Name: "Onions", Weight: "14g"},
			{Name: "Spices turmeric", Weight: "1g"},
			{Name: "Spices cumin seed", Weight: "1g"},
			{Name: "Coriander powder", Weight: "1g"},
			{Name: "Spices chili powder", Weight: "1g"},
			{Name: "Garam masala", Weight: "1g"},
			{Name: "Salt", Weight: "2g"},
			{Name: "Black pepper", Weight: "1g"},
			{Name: "Ginger garlic paste", Weight: "5g"},
			{Name: "Lemon juice", Weight: "5ml"},
			{Name: "Vegetable oil", Weight: "10ml"},
		},
	},
	{
		ID:            "2",
		Name:          "Tofu Broccoli Stir Fry",
		Price:         320,
		Kcal:          450,
		Protein:       30,
		Carb:          20,
		Fat:           15,
		Fiber:         8,
		Image:         "https://picsum.photos/seed/tofu/400/400",
		Tags:          []string{"Low Carb", "Vegan"},
		IsVeg:         true,
		IsHot:         true,
		IsHighProtein: true,
		Description:   "A healthy and vibrant stir-fry with firm tofu, fresh broccoli florets, and a savory soy-ginger glaze.",
		Ingredients: []entity.Ingredient{
			{Name: "Firm Tofu", Weight: "150g"},
			{Name: "Broccoli", Weight: "100g"},
			{Name: "Soy Sauce", Weight: "15ml"},
			{Name: "Ginger", Weight: "5g"},
		},
	},
	{
		ID:            "3",
		Name:          "Roasted Chicken Salad",
		Price:         380,
		Kcal:          520,
		Protein:       45,
		Carb:          10,
		Fat:           22,
		Fiber:         6,
		Image:         "https://picsum.photos/seed/salad/400/400",
		Tags:          []string{"Fiber Rich"},
		IsBestSeller:  true,
		IsHighProtein: true,
		Description:   "Succulent roasted chicken breast pieces served over a bed of crisp greens, cherry tomatoes, and cucumbers.",
		Ingredients: []entity.Ingredient{
			{Name: "Chicken Breast", Weight: "200g"},
			{Name: "Mixed Greens", Weight: "50g"},
			{Name: "Cherry Tomatoes", Weight: "30g"},
			{Name: "Olive Oil", Weight: "10ml"},
		},
	},
	{
		ID:          "4",
		Name:        "Quinoa Veggie Bowl",
		Price:       290,
		Kcal:        380,
		Protein:     15,
		Carb:        45,
		Fat:         12,
		Fiber:       10,
		Image:       "https://picsum.photos/seed/quinoa/400/400",
		Tags:        []string{entity.TagGlutenFree},
		IsVeg:       true,
		Description: "A nutritional powerhouse featuring fluffy quinoa, roasted seasonal vegetables, and a light lemon tahini dressing.",
		Ingredients: []entity.Ingredient{
			{Name: "Cooked Quinoa", Weight: "120g"},
			{Name: "Sweet Potato", Weight: "60g"},
			{Name: "Kale", Weight: "40g"},
			{Name: "Tahini", Weight: "15g"},
		},
	},
}
