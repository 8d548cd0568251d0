package aiclient

import (
	"encoding/json"
	"fmt"
	"strconv"

	"fitspace/internal/models/db_models"
)

const unspecified = "не указан"

// BuildPlanPrompt renders the weekly plan prompt for one user. The output is
// deterministic for identical inputs: the generated plan may vary, the prompt
// never does. lastWeight is the most recent progress measurement, nil when
// the user has no progress entries yet.
func BuildPlanPrompt(user *db_models.User, lastWeight *float64, goal string) string {
	gender := unspecified
	if user.Gender != nil && *user.Gender != "" {
		gender = *user.Gender
	}
	age := unspecified
	if user.Age != nil {
		age = strconv.Itoa(*user.Age)
	}
	height := unspecified
	if user.Height != nil {
		height = strconv.FormatFloat(*user.Height, 'f', -1, 64)
	}
	weight := unspecified
	if lastWeight != nil {
		weight = strconv.FormatFloat(*lastWeight, 'f', -1, 64)
	}

	profile := fmt.Sprintf(`- Цель: %q
- Пол: %s
- Возраст: %s
- Рост: %s см
- Текущий вес: %s кг`, goal, gender, age, height, weight)

	return fmt.Sprintf(`Ты — элитный AI-тренер и диетолог мирового класса для платформы FitSpace. Твоя задача — создать комплексный, персонализированный и научно обоснованный план на 1 неделю, основываясь на данных пользователя.
Твой ответ должен быть ИСКЛЮЧИТЕЛЬНО в формате одного валидного JSON-объекта, без какого-либо окружающего текста, пояснений или markdown-разметки (никаких `+"```json"+`).
Язык всего генерируемого контента (названия, описания и т.д.) должен быть РУССКИМ.

Вот данные пользователя:
%s

JSON-объект должен строго соответствовать следующей структуре:
{
  "fitnessPlan": {
    "id": "string", // сгенерируй UUID
    "name": "string", // например, "Недельный план для набора массы"
    "goal": %q,
    "level": "beginner",
    "exercises": [ // Массив упражнений на неделю. 3-4 тренировочных дня. Учитывай данные пользователя.
      {
        "day": "Понедельник" | "Среда" | "Пятница" | "Суббота",
        "name": "string", "sets": "number", "reps": "string", "description": "string"
      }
    ],
    "durationWeeks": 1
  },
  "dietPlan": {
    "id": "string", // сгенерируй UUID
    "type": "balanced",
    "personalized": true,
    "caloriesPerDay": "number", // Рассчитай точное значение калорий для цели и данных пользователя (например, по формуле Харриса-Бенедикта).
    "recipes": [ // Список рецептов на ОДИН день (3 основных, 2 перекуса).
      {
        "id": "string", // сгенерируй UUID
        "mealType": "Завтрак" | "Перекус 1" | "Обед" | "Перекус 2" | "Ужин",
        "title": "string",
        "ingredients": [ { "name": "string", "amount": "string" } ],
        "macros": { "protein": "number", "fat": "number", "carbs": "number" },
        "calories": "number"
      }
    ]
  },
  "requiredEquipment": [ // Список инвентаря для тренировок.
    { "name": "string" } // например, "Гантели", "Коврик для йоги"
  ],
  "shoppingList": [ // Агрегированный список продуктов для диеты на НЕДЕЛЮ. Суммируй все ингредиенты из рецептов и умножь на 7.
    { "name": "string", "amount": "string" } // например, "Куриная грудка", "700 г"
  ]
}

Важные замечания:
- Если цель — 'diet_only', объект fitnessPlan всё равно должен быть возвращен, но с пустым массивом exercises, а requiredEquipment должен быть пустым.
- Если для тренировок не нужен инвентарь, requiredEquipment должен быть пустым массивом.
- Всегда предоставляй полный план питания и список покупок.`, profile, goal)
}

// BuildChatSystemInstruction embeds the full plan payload into the coach
// persona prompt used to seed the premium chat.
func BuildChatSystemInstruction(planData map[string]any) (string, error) {
	encoded, err := json.MarshalIndent(planData, "", "  ")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`Ты — экспертный ИИ-тренер и диетолог для платформы FitSpace. Пользователь только что получил следующий план тренировок и питания. Твоя роль — быть мотивационным тренером, отвечать на вопросы пользователя о плане и давать полезные советы. Все твои ответы должны быть на РУССКОМ языке.
Вот план пользователя для контекста:
%s`, encoded), nil
}
