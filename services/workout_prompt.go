package services

import (
	"fmt"
	"strings"

	"github.com/ser6eevich/formafit/models"
)

const maleExercisePreset = `ДОПУСТИМЫЕ УПРАЖНЕНИЯ (МУЖСКИЕ):
Грудь: Отжимания от пола, Отжимания на брусьях, Жим штанги лежа, Жим штанги на наклонной скамье, Жим гантелей лежа, Разведение гантелей лежа, Сведение рук в кроссовере, Жим в Хаммере сидя.
Спина: Подтягивания прямым/обратным хватом, Гиперэкстензия, Тяга штанги в наклоне, Тяга Т-грифа, Шраги со штангой, Тяга гантели одной рукой, Пуловер с гантелей, Тяга верхнего блока, Тяга горизонтального блока, Рычажная тяга.
Ноги: Приседания классические, Выпады, Приседания со штангой, Фронтальные приседания, Становая тяга, Кубковые приседания, Жим ногами, Гакк-приседания, Разгибание ног сидя, Сгибание ног.
Плечи: Армейский жим, Тяга штанги к подбородку, Жим гантелей сидя, Махи гантелей в стороны/перед собой/в наклоне, Жим сидя в тренажере, Обратная бабочка.
Руки: Отжимания на брусьях, Подъем штанги на бицепс, Французский жим, Жим узким хватом, Молотки, Концентрированный подъем, Разгибание рук в кроссовере, Тренажер Скотта.
Пресс: Скручивания, Планка, Подъем ног в висе, Скручивания в блоке, Ролик для пресса, Русские скручивания.`

const femaleExercisePreset = `ДОПУСТИМЫЕ УПРАЖНЕНИЯ (ЖЕНСКИЕ):
Ноги и Ягодицы (ПРИОРИТЕТ): Ягодичный мостик, Махи ногой назад/в сторону, Приседания, Выпады, Румынская тяга, Ягодичный мостик со штангой, Болгарские сплит-приседания, Кубковые приседания, Зашагивания на скамью, Жим ногами (высокая постановка), Сведение/Разведение ног, Отведение ноги в кроссовере, Сгибание ног.
Спина (Осанка): Гиперэкстензия, Подтягивания в гравитроне, Тяга гантели одной рукой, Пуловер с гантелей, Тяга верхнего блока, Тяга горизонтального блока, Гиперэкстензия в тренажере.
Грудь (Тонус): Отжимания от пола, Жим гантелей лежа, Разведение гантелей лежа, Сведение рук в Бабочке.
Плечи и Руки: Обратные отжимания от скамьи, Жим гантелей сидя, Махи гантелей в стороны, Разгибание руки в наклоне, Разгибание рук в кроссовере, Сгибание рук в кроссовере.
Пресс: Скручивания, Планка, Велосипед, Подъем ног в упоре.`

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func buildWorkoutPrompt(user *models.User, targetMuscles []string, userWishes, pastContext string) string {
	isFemale := user.Gender == "Женский"

	preset := maleExercisePreset
	limit := "5-7"
	rest := "2–3 минуты"
	structure := "2-3 тяжелых многосуставных (база) + 3-4 изолирующих (добивка)."
	if isFemale {
		preset = femaleExercisePreset
		limit = "6-8"
		rest = "1–1.5 минуты"
		structure = "2-3 базовых упражнения на низ тела + 4-5 изолирующих на ягодицы, пресс и спину."
	}

	targetHint := "\nВыбери мышечные группы сам, учитывая разнообразие и баланс."
	if len(targetMuscles) > 0 {
		targetHint = fmt.Sprintf("\nЦЕЛЕВЫЕ МЫШЕЧНЫЕ ГРУППЫ НА СЕГОДНЯ: %s.\nСоставь тренировку ИМЕННО на эти группы мышц. Выбирай упражнения только из соответствующих разделов.",
			strings.Join(targetMuscles, ", "))
	}

	weight := "?"
	if user.Weight > 0 {
		weight = fmt.Sprintf("%g", user.Weight)
	}
	height := "?"
	if user.Height > 0 {
		height = fmt.Sprintf("%g", user.Height)
	}

	return fmt.Sprintf(`Ты — профессиональный фитнес-тренер. Составь 1 тренировку на сегодня.

ПРОФИЛЬ ПОЛЬЗОВАТЕЛЯ:
- Пол: %s
- Цель: %s
- Опыт: %s
- Дата рождения: %s
- Вес: %s кг, Рост: %s см
- Травмы/Ограничения: %s
%s

ДОПОЛНИТЕЛЬНЫЕ ПОЖЕЛАНИЯ ПОЛЬЗОВАТЕЛЯ:
%s

%s

ПРОШЛЫЕ УПРАЖНЕНИЯ (для авто-прогрессии весов):
%s

ЖЁСТКИЕ ПРАВИЛА:
1. Используй ТОЛЬКО упражнения из списка выше. Не придумывай свои.
2. Количество упражнений: СТРОГО %s штук.
3. Структура: %s
4. Общий объем: не более 20-25 рабочих подходов за тренировку.
5. Первое упражнение ВСЕГДА — разминка (беговая дорожка, коврик, эллипс и т.д.), 5-10 минут.
6. Рекомендуемое время отдыха между подходами: %s.
7. Если есть травмы — ИСКЛЮЧИ упражнения, затрагивающие больную зону.
8. Если есть прошлые данные — увеличь вес на 2.5-5 кг для прогрессии.
9. Тщательно учитывай "ДОПОЛНИТЕЛЬНЫЕ ПОЖЕЛАНИЯ ПОЛЬЗОВАТЕЛЯ" при выборе упражнений и объема тренировки.

Верни СТРОГО JSON-объект:
{
  "workoutName": "Название тренировки",
  "exercises": [
    {
      "name": "Разминка: беговая дорожка",
      "sets": [{ "reps": 1, "weight": 0, "duration": "5 мин" }]
    },
    {
      "name": "Жим штанги лежа",
      "sets": [
        { "reps": 10, "weight": 40 },
        { "reps": 10, "weight": 40 },
        { "reps": 10, "weight": 40 }
      ]
    }
  ]
}`,
		orDefault(user.Gender, "Не указан"),
		orDefault(user.Goal, "Не указана"),
		orDefault(user.Experience, "Новичок"),
		orDefault(user.BirthDate, "Не указана"),
		weight, height,
		orDefault(user.Injuries, "Нет"),
		targetHint,
		orDefault(userWishes, "Нет особых пожеланий. Составь сбалансированный план."),
		preset,
		orDefault(pastContext, "Нет данных. Используй начальные веса для новичка."),
		limit, structure, rest,
	)
}
