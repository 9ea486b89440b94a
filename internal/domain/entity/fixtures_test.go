package entity

func testDishes() []Dish {
	return []Dish{
		{ID: "1", Name: "Grilled Paneer Tikka", Price: 240, Kcal: 634, Protein: 25, Carb: 23, Fat: 52, Tags: []string{"Rich Calcium"}, IsVeg: true, IsHighProtein: true},
		{ID: "2", Name: "Tofu Broccoli Stir Fry", Price: 320, Kcal: 450, Protein: 30, Carb: 20, Fat: 15, Tags: []string{"Low Carb", "Vegan"}, IsVeg: true, IsHighProtein: true},
		{ID: "3", Name: "Roasted Chicken Salad", Price: 380, Kcal: 520, Protein: 45, Carb: 10, Fat: 22, Tags: []string{"Fiber Rich"}, IsHighProtein: true},
		{ID: "4", Name: "Quinoa Veggie Bowl", Price: 290, Kcal: 380, Protein: 15, Carb: 45, Fat: 12, Tags: []string{TagGlutenFree}, IsVeg: true},
	}
}

func ids(dishes []Dish) []string {
	out := make([]string, 0, len(dishes))
	for _, d := range dishes {
		out = append(out, d.ID)
	}
	return out
}
