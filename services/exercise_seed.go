package services

import "github.com/ser6eevich/formafit/models"

func ex(name, group, gender, equipment string, sets, reps int, weight float64, order int) models.Exercise {
	return models.Exercise{
		Name: name, MuscleGroup: group, Gender: gender, Equipment: equipment,
		DefaultSets: sets, DefaultReps: reps, DefaultWeight: weight, OrderIndex: order,
	}
}

func cardio(name string, speed, incline float64, duration, order int) models.Exercise {
	return models.Exercise{
		Name: name, MuscleGroup: "Разминка", Gender: "unisex", Equipment: "cardio",
		IsCardio: true, DefaultSpeed: speed, DefaultIncline: incline, DefaultDuration: duration,
		DefaultSets: 1, DefaultReps: 1, OrderIndex: order,
	}
}

var exerciseCatalog = []models.Exercise{
	// Разминка (unisex)
	cardio("Беговая дорожка", 6.0, 1.0, 5, 0),
	cardio("Эллиптический тренажер", 0, 0, 5, 1),
	{Name: "Разминка на коврике", MuscleGroup: "Разминка", Gender: "unisex", Equipment: "bodyweight", DefaultDuration: 5, DefaultSets: 1, DefaultReps: 1, OrderIndex: 2},
	cardio("Велотренажер", 0, 0, 5, 3),
	cardio("Бассейн", 0, 0, 30, 4),

	// Мужские: грудь
	ex("Отжимания от пола", "Грудь", "male", "bodyweight", 3, 10, 0, 0),
	ex("Отжимания на брусьях (наклон вперед)", "Грудь", "male", "bodyweight", 3, 10, 0, 1),
	ex("Жим штанги лежа", "Грудь", "male", "barbell", 3, 10, 40, 2),
	ex("Жим штанги на наклонной скамье", "Грудь", "male", "barbell", 3, 10, 30, 3),
	ex("Жим гантелей лежа", "Грудь", "male", "dumbbell", 3, 10, 16, 4),
	ex("Разведение гантелей лежа", "Грудь", "male", "dumbbell", 3, 10, 10, 5),
	ex("Сведение рук в кроссовере", "Грудь", "male", "machine", 3, 10, 15, 6),
	ex("Жим в Хаммере сидя", "Грудь", "male", "machine", 3, 10, 20, 7),

	// Мужские: спина
	ex("Подтягивания", "Спина", "male", "bodyweight", 3, 8, 0, 0),
	ex("Гиперэкстензия", "Спина", "male", "bodyweight", 3, 15, 0, 1),
	ex("Тяга штанги в наклоне", "Спина", "male", "barbell", 3, 10, 40, 2),
	ex("Тяга Т-грифа", "Спина", "male", "barbell", 3, 10, 25, 3),
	ex("Шраги со штангой", "Спина", "male", "barbell", 3, 12, 40, 4),
	ex("Тяга гантели одной рукой", "Спина", "male", "dumbbell", 3, 10, 16, 5),
	ex("Пуловер с гантелей", "Спина", "male", "dumbbell", 3, 10, 14, 6),
	ex("Тяга верхнего блока", "Спина", "male", "machine", 3, 10, 40, 7),
	ex("Тяга горизонтального блока", "Спина", "male", "machine", 3, 10, 35, 8),
	ex("Рычажная тяга", "Спина", "male", "machine", 3, 10, 30, 9),

	// Мужские: ноги
	ex("Приседания классические", "Ноги", "male", "bodyweight", 3, 15, 0, 0),
	ex("Выпады", "Ноги", "male", "bodyweight", 3, 12, 0, 1),
	ex("Приседания со штангой", "Ноги", "male", "barbell", 3, 8, 40, 2),
	ex("Фронтальные приседания", "Ноги", "male", "barbell", 3, 8, 30, 3),
	ex("Становая тяга", "Ноги", "male", "barbell", 3, 6, 50, 4),
	ex("Выпады со штангой", "Ноги", "male", "barbell", 3, 10, 20, 5),
	ex("Кубковые приседания", "Ноги", "male", "dumbbell", 3, 10, 16, 6),
	ex("Жим ногами", "Ноги", "male", "machine", 3, 12, 80, 7),
	ex("Гакк-приседания", "Ноги", "male", "machine", 3, 10, 40, 8),
	ex("Разгибание ног сидя", "Ноги", "male", "machine", 3, 12, 30, 9),
	ex("Сгибание ног", "Ноги", "male", "machine", 3, 12, 25, 10),

	// Мужские: плечи
	ex("Армейский жим", "Плечи", "male", "barbell", 3, 8, 25, 0),
	ex("Тяга штанги к подбородку", "Плечи", "male", "barbell", 3, 10, 20, 1),
	ex("Жим гантелей сидя", "Плечи", "male", "dumbbell", 3, 10, 12, 2),
	ex("Махи гантелей в стороны", "Плечи", "male", "dumbbell", 3, 15, 6, 3),
	ex("Махи гантелей перед собой", "Плечи", "male", "dumbbell", 3, 12, 6, 4),
	ex("Махи гантелей в наклоне", "Плечи", "male", "dumbbell", 3, 15, 5, 5),
	ex("Жим сидя в тренажере", "Плечи", "male", "machine", 3, 10, 25, 6),
	ex("Обратная бабочка", "Плечи", "male", "machine", 3, 15, 20, 7),

	// Мужские: руки
	ex("Отжимания на брусьях", "Руки", "male", "bodyweight", 3, 10, 0, 0),
	ex("Отжимания узким хватом", "Руки", "male", "bodyweight", 3, 12, 0, 1),
	ex("Подъем штанги на бицепс", "Руки", "male", "barbell", 3, 12, 15, 2),
	ex("Французский жим", "Руки", "male", "barbell", 3, 10, 15, 3),
	ex("Жим узким хватом", "Руки", "male", "barbell", 3, 8, 30, 4),
	ex("Молотки", "Руки", "male", "dumbbell", 3, 12, 10, 5),
	ex("Концентрированный подъем", "Руки", "male", "dumbbell", 3, 12, 8, 6),
	ex("Разгибание руки из-за головы", "Руки", "male", "dumbbell", 3, 10, 10, 7),
	ex("Разгибание рук в кроссовере", "Руки", "male", "machine", 3, 12, 20, 8),
	ex("Сгибание рук в кроссовере", "Руки", "male", "machine", 3, 12, 15, 9),
	ex("Тренажер Скотта", "Руки", "male", "machine", 3, 12, 15, 10),

	// Мужские: пресс
	ex("Скручивания", "Пресс", "male", "bodyweight", 3, 20, 0, 0),
	ex("Планка", "Пресс", "male", "bodyweight", 3, 1, 0, 1),
	ex("Подъем ног в висе", "Пресс", "male", "bodyweight", 3, 15, 0, 2),
	ex("Скручивания в блоке", "Пресс", "male", "machine", 3, 15, 20, 3),
	ex("Ролик для пресса", "Пресс", "male", "bodyweight", 3, 12, 0, 4),
	ex("Русские скручивания", "Пресс", "male", "bodyweight", 3, 20, 5, 5),

	// Женские: ноги и ягодицы
	ex("Ягодичный мостик", "Ноги и Ягодицы", "female", "bodyweight", 3, 15, 0, 0),
	ex("Махи ногой назад", "Ноги и Ягодицы", "female", "bodyweight", 3, 15, 0, 1),
	ex("Махи ногой в сторону", "Ноги и Ягодицы", "female", "bodyweight", 3, 15, 0, 2),
	ex("Отведение ноги лежа на боку", "Ноги и Ягодицы", "female", "bodyweight", 3, 15, 0, 3),
	ex("Приседания", "Ноги и Ягодицы", "female", "bodyweight", 3, 15, 0, 4),
	ex("Выпады", "Ноги и Ягодицы", "female", "bodyweight", 3, 12, 0, 5),
	ex("Румынская тяга", "Ноги и Ягодицы", "female", "barbell", 3, 12, 20, 6),
	ex("Ягодичный мостик со штангой", "Ноги и Ягодицы", "female", "barbell", 3, 12, 20, 7),
	ex("Выпады со штангой", "Ноги и Ягодицы", "female", "barbell", 3, 12, 15, 8),
	ex("Приседания со штангой (лёгкие)", "Ноги и Ягодицы", "female", "barbell", 3, 12, 15, 9),
	ex("Болгарские сплит-приседания", "Ноги и Ягодицы", "female", "dumbbell", 3, 10, 6, 10),
	ex("Кубковые приседания", "Ноги и Ягодицы", "female", "dumbbell", 3, 12, 8, 11),
	ex("Зашагивания на скамью", "Ноги и Ягодицы", "female", "dumbbell", 3, 12, 5, 12),
	ex("Жим ногами (высокая постановка)", "Ноги и Ягодицы", "female", "machine", 3, 12, 40, 13),
	ex("Сведение ног в тренажере", "Ноги и Ягодицы", "female", "machine", 3, 15, 25, 14),
	ex("Разведение ног в тренажере", "Ноги и Ягодицы", "female", "machine", 3, 15, 25, 15),
	ex("Отведение ноги в кроссовере", "Ноги и Ягодицы", "female", "machine", 3, 15, 10, 16),
	ex("Сгибание ног сидя", "Ноги и Ягодицы", "female", "machine", 3, 12, 20, 17),

	// Женские: спина
	ex("Гиперэкстензия на полу", "Спина", "female", "bodyweight", 3, 15, 0, 0),
	ex("Подтягивания в гравитроне", "Спина", "female", "machine", 3, 10, 0, 1),
	ex("Тяга гантели одной рукой", "Спина", "female", "dumbbell", 3, 10, 6, 2),
	ex("Пуловер с гантелей", "Спина", "female", "dumbbell", 3, 10, 6, 3),
	ex("Тяга верхнего блока", "Спина", "female", "machine", 3, 10, 25, 4),
	ex("Тяга горизонтального блока", "Спина", "female", "machine", 3, 10, 20, 5),
	ex("Гиперэкстензия в тренажере", "Спина", "female", "machine", 3, 15, 0, 6),

	// Женские: грудь
	ex("Отжимания от пола", "Грудь", "female", "bodyweight", 3, 10, 0, 0),
	ex("Жим гантелей лежа", "Грудь", "female", "dumbbell", 3, 10, 4, 1),
	ex("Разведение гантелей лежа", "Грудь", "female", "dumbbell", 3, 10, 3, 2),
	ex("Сведение рук в Бабочке", "Грудь", "female", "machine", 3, 10, 10, 3),

	// Женские: плечи и руки
	ex("Обратные отжимания от скамьи", "Плечи и Руки", "female", "bodyweight", 3, 12, 0, 0),
	ex("Жим гантелей сидя", "Плечи и Руки", "female", "dumbbell", 3, 10, 4, 1),
	ex("Махи гантелей в стороны", "Плечи и Руки", "female", "dumbbell", 3, 15, 2, 2),
	ex("Разгибание руки в наклоне", "Плечи и Руки", "female", "dumbbell", 3, 12, 3, 3),
	ex("Разгибание рук в кроссовере", "Плечи и Руки", "female", "machine", 3, 12, 10, 4),
	ex("Сгибание рук в кроссовере", "Плечи и Руки", "female", "machine", 3, 12, 8, 5),

	// Женские: пресс
	ex("Скручивания", "Пресс", "female", "bodyweight", 3, 20, 0, 0),
	ex("Планка", "Пресс", "female", "bodyweight", 3, 1, 0, 1),
	ex("Велосипед", "Пресс", "female", "bodyweight", 3, 20, 0, 2),
	ex("Скалолаз", "Пресс", "female", "bodyweight", 3, 20, 0, 3),
	ex("Мертвый жук", "Пресс", "female", "bodyweight", 3, 12, 0, 4),
	ex("Вакуум живота", "Пресс", "female", "bodyweight", 3, 5, 0, 5),
	ex("Подъем ног в упоре", "Пресс", "female", "bodyweight", 3, 12, 0, 6),
}
