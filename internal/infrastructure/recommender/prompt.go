package recommender

import "fmt"

const systemPrompt = `You are a nutritionist for an Indian food delivery app.
Answer only with JSON: {"suggestions": [...]}, where each item has string fields "name", "reason" and "macros".
"macros" is a short summary like "32g P • 40g C • 18g F".`

func buildUserPrompt(goalKcal int) string {
	return fmt.Sprintf("Suggest 3 high-protein, nutritionally dense dinner options for someone aiming for %d Kcal. "+
		"One should be Paneer-based, one Chicken-based, and one Tofu-based.", goalKcal)
}
