package services

import (
	"testing"
	"time"

	"github.com/ser6eevich/formafit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logAt(id uint, ts time.Time, name string, cal, prot, carbs, fats int) models.NutritionLog {
	l := models.NutritionLog{
		FoodName: name,
		Calories: cal,
		Protein:  prot,
		Carbs:    carbs,
		Fats:     fats,
	}
	l.ID = id
	l.CreatedAt = ts
	return l
}

func TestDayStartUTCMoscow(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	// Moscow reports -180: local midnight 2024-03-15 00:00 is 21:00 UTC
	// of the previous day.
	got := DayStartUTC(now, -180)
	assert.Equal(t, time.Date(2024, 3, 14, 21, 0, 0, 0, time.UTC), got)
}

func TestDayStartUTCZeroOffset(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC)
	got := DayStartUTC(now, 0)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestDayStartUTCNeverInFuture(t *testing.T) {
	offsets := []int{-720, -180, -60, 0, 60, 300, 720}
	times := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 1, 0, time.UTC),
		time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC),
		time.Date(2024, 12, 31, 12, 0, 0, 0, time.UTC),
	}
	for _, now := range times {
		for _, off := range offsets {
			d := DayStartUTC(now, off)
			assert.False(t, d.After(now), "day start %v after now %v for offset %d", d, now, off)
			assert.True(t, now.Sub(d) < 24*time.Hour, "window wider than a day for offset %d", off)
		}
	}
}

func TestDayStartUTCIdempotentWithinDay(t *testing.T) {
	// Two instants inside the same local day share one day start.
	morning := time.Date(2024, 3, 15, 5, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 15, 20, 59, 0, 0, time.UTC)
	assert.Equal(t, DayStartUTC(morning, -180), DayStartUTC(evening, -180))
}

func TestTodayTotalsEmpty(t *testing.T) {
	totals, items := TodayTotals(nil)
	assert.Equal(t, MacroTotals{}, totals)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestTodayTotalsSums(t *testing.T) {
	ts := time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC)
	entries := []models.NutritionLog{
		logAt(1, ts, "Овсянка", 500, 20, 60, 15),
		logAt(2, ts.Add(4*time.Hour), "Курица с рисом", 300, 35, 25, 8),
	}

	totals, items := TodayTotals(entries)

	assert.Equal(t, MacroTotals{Calories: 800, Protein: 55, Carbs: 85, Fats: 23}, totals)
	require.Len(t, items, 2)
	assert.Equal(t, "Овсянка", items[0].Name)
	assert.Equal(t, "Курица с рисом", items[1].Name)
	assert.Equal(t, "2024-03-15T08:30:00Z", items[0].Date)
}

func TestTodayTotalsTimestampRoundTrip(t *testing.T) {
	ts := time.Date(2024, 3, 15, 8, 30, 0, 123456789, time.UTC)
	_, items := TodayTotals([]models.NutritionLog{logAt(1, ts, "x", 1, 1, 1, 1)})

	require.Len(t, items, 1)
	parsed, err := time.Parse(time.RFC3339Nano, items[0].Date)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ts))
}

func TestCalculateGoalsDefaults(t *testing.T) {
	goals := CalculateGoals(0, "")
	// 75 kg, maintenance factor 1.2
	assert.Equal(t, MacroTotals{Calories: 2160, Protein: 150, Carbs: 225, Fats: 75}, goals)
}

func TestCalculateGoalsWeightLoss(t *testing.T) {
	goals := CalculateGoals(100, "Похудение")
	assert.Equal(t, MacroTotals{Calories: 1920, Protein: 200, Carbs: 300, Fats: 100}, goals)
}

func TestCalculateGoalsRounding(t *testing.T) {
	goals := CalculateGoals(70.3, "Набор массы")
	assert.Equal(t, 2025, goals.Calories) // 70.3*24*1.2 = 2024.64
	assert.Equal(t, 141, goals.Protein)   // 140.6
	assert.Equal(t, 211, goals.Carbs)     // 210.9 rounds away from zero
	assert.Equal(t, 70, goals.Fats)
}

func TestGroupByDay(t *testing.T) {
	d1 := time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)
	entries := []models.NutritionLog{
		logAt(3, d2, "Обед", 600, 40, 50, 20),
		logAt(2, d1.Add(10*time.Hour), "Ужин", 450, 30, 30, 18),
		logAt(1, d1, "Завтрак", 350, 15, 45, 10),
	}

	days := GroupByDay(entries)

	require.Len(t, days, 2)
	// newest day first
	assert.Equal(t, d2, days[0].Date)
	assert.Equal(t, 600, days[0].TotalCalories)
	require.Len(t, days[0].Items, 1)

	assert.Equal(t, d1, days[1].Date)
	assert.Equal(t, 800, days[1].TotalCalories)
	assert.Equal(t, 45, days[1].TotalProtein)
	require.Len(t, days[1].Items, 2)
	assert.Equal(t, "Ужин", days[1].Items[0].FoodName)
}

func TestGroupByDayKeysOnUTCDate(t *testing.T) {
	// 23:30 UTC is already the next day in Moscow, but history buckets by
	// the UTC calendar date.
	late := time.Date(2024, 3, 14, 23, 30, 0, 0, time.UTC)
	next := time.Date(2024, 3, 15, 1, 0, 0, 0, time.UTC)
	entries := []models.NutritionLog{
		logAt(1, late, "Поздний ужин", 200, 10, 10, 5),
		logAt(2, next, "Завтрак", 300, 20, 30, 10),
	}

	days := GroupByDay(entries)

	require.Len(t, days, 2)
	assert.Equal(t, "2024-03-15", days[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-03-14", days[1].Date.Format("2006-01-02"))
}

func TestGroupByDayEmpty(t *testing.T) {
	days := GroupByDay(nil)
	assert.Empty(t, days)
	assert.NotNil(t, days)
}
