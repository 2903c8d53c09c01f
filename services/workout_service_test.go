package services

import (
	"testing"

	"github.com/ser6eevich/formafit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSetsStrengthDefaults(t *testing.T) {
	sets := BuildSets(SelectedExercise{Name: "Жим штанги лежа"})

	require.Len(t, sets, 3)
	for _, s := range sets {
		assert.Equal(t, 10, s.Reps)
		assert.Zero(t, s.Weight)
		assert.Empty(t, s.Duration)
	}
}

func TestBuildSetsStrengthCatalogDefaults(t *testing.T) {
	sets := BuildSets(SelectedExercise{
		Name:          "Жим ногами",
		DefaultSets:   4,
		DefaultReps:   12,
		DefaultWeight: 80,
	})

	require.Len(t, sets, 4)
	assert.Equal(t, models.ExerciseSet{Reps: 12, Weight: 80}, sets[0])
}

func TestBuildSetsStrengthOverridesWin(t *testing.T) {
	sets := BuildSets(SelectedExercise{
		Name:          "Приседания",
		Sets:          5,
		Reps:          6,
		Weight:        100,
		DefaultSets:   3,
		DefaultReps:   10,
		DefaultWeight: 60,
	})

	require.Len(t, sets, 5)
	assert.Equal(t, models.ExerciseSet{Reps: 6, Weight: 100}, sets[0])
}

func TestBuildSetsCardio(t *testing.T) {
	sets := BuildSets(SelectedExercise{Name: "Беговая дорожка", IsCardio: true})

	require.Len(t, sets, 1)
	assert.Equal(t, 1, sets[0].Reps)
	assert.Equal(t, "5 мин", sets[0].Duration)
	assert.Equal(t, 6.0, sets[0].Speed)
	assert.Equal(t, 1.0, sets[0].Incline)
}

func TestBuildSetsCardioOverrides(t *testing.T) {
	sets := BuildSets(SelectedExercise{
		Name:            "Эллипс",
		IsCardio:        true,
		Duration:        20,
		Speed:           8,
		DefaultDuration: 10,
		DefaultSpeed:    6,
		DefaultIncline:  2,
	})

	require.Len(t, sets, 1)
	assert.Equal(t, "20 мин", sets[0].Duration)
	assert.Equal(t, 8.0, sets[0].Speed)
	assert.Equal(t, 2.0, sets[0].Incline)
}

func TestContainsExercise(t *testing.T) {
	list := []PlannedExercise{
		{Name: "Разминка: беговая дорожка"},
		{Name: "Бассейн"},
	}
	assert.True(t, containsExercise(list, "Бассейн"))
	assert.False(t, containsExercise(list, "Жим штанги лежа"))
}

func TestBuildWorkoutPromptGenderedPresets(t *testing.T) {
	male := &models.User{Gender: "Мужской", Goal: "Набор массы", Weight: 80}
	female := &models.User{Gender: "Женский", Goal: "Похудение", Weight: 60}

	mp := buildWorkoutPrompt(male, nil, "", "")
	fp := buildWorkoutPrompt(female, nil, "", "")

	assert.Contains(t, mp, "МУЖСКИЕ")
	assert.Contains(t, mp, "СТРОГО 5-7 штук")
	assert.Contains(t, fp, "ЖЕНСКИЕ")
	assert.Contains(t, fp, "СТРОГО 6-8 штук")
}

func TestBuildWorkoutPromptTargetMuscles(t *testing.T) {
	user := &models.User{Gender: "Мужской"}
	p := buildWorkoutPrompt(user, []string{"Грудь", "Спина"}, "", "")
	assert.Contains(t, p, "ЦЕЛЕВЫЕ МЫШЕЧНЫЕ ГРУППЫ НА СЕГОДНЯ: Грудь, Спина")
}

func TestBuildWorkoutPromptDefaults(t *testing.T) {
	p := buildWorkoutPrompt(&models.User{}, nil, "", "")
	assert.Contains(t, p, "Пол: Не указан")
	assert.Contains(t, p, "Опыт: Новичок")
	assert.Contains(t, p, "Вес: ? кг")
	assert.Contains(t, p, "Нет данных. Используй начальные веса для новичка.")
}
