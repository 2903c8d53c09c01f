package services

import (
	"math"
	"sort"
	"time"

	"github.com/ser6eevich/formafit/config"
	"github.com/ser6eevich/formafit/models"
)

// DefaultWeightKg is assumed when the profile has no recorded weight.
const DefaultWeightKg = 75

type MacroTotals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fats     int `json:"fats"`
}

type NutritionItem struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fats     int    `json:"fats"`
	MealType string `json:"mealType"`
	Date     string `json:"date"` // ISO-8601 UTC
}

type HistoryItem struct {
	ID       uint   `json:"id"`
	UserID   uint   `json:"userId"`
	MealType string `json:"mealType"`
	FoodName string `json:"foodName"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fats     int    `json:"fats"`
	Date     string `json:"date"` // ISO-8601 UTC
}

// DayAggregate is one calendar day of the history view. Date is the
// timestamp of the first entry seen for that day, not a truncated date.
type DayAggregate struct {
	Date          time.Time     `json:"date"`
	TotalCalories int           `json:"totalCalories"`
	TotalProtein  int           `json:"totalProtein"`
	TotalCarbs    int           `json:"totalCarbs"`
	TotalFats     int           `json:"totalFats"`
	Items         []HistoryItem `json:"items"`
}

// DayStartUTC returns the UTC instant of local midnight "today" for a client
// whose timezone offset follows the JS Date.getTimezoneOffset convention:
// localTime = utcTime - offset minutes (Moscow is -180).
func DayStartUTC(now time.Time, tzOffsetMinutes int) time.Time {
	userTime := now.UTC().Add(-time.Duration(tzOffsetMinutes) * time.Minute)
	localMidnight := time.Date(userTime.Year(), userTime.Month(), userTime.Day(), 0, 0, 0, 0, time.UTC)
	return localMidnight.Add(time.Duration(tzOffsetMinutes) * time.Minute)
}

// TodayTotals reduces pre-filtered entries into summed totals plus view
// items in input order. Every entry contributes exactly once.
func TodayTotals(entries []models.NutritionLog) (MacroTotals, []NutritionItem) {
	var totals MacroTotals
	items := make([]NutritionItem, 0, len(entries))
	for _, e := range entries {
		totals.Calories += e.Calories
		totals.Protein += e.Protein
		totals.Carbs += e.Carbs
		totals.Fats += e.Fats

		items = append(items, NutritionItem{
			ID:       e.ID,
			Name:     e.FoodName,
			Calories: e.Calories,
			Protein:  e.Protein,
			Carbs:    e.Carbs,
			Fats:     e.Fats,
			MealType: e.MealType,
			Date:     e.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	return totals, items
}

// CalculateGoals derives daily macro targets from body weight and the stated
// goal label. Weight 0 means unknown and falls back to DefaultWeightKg.
func CalculateGoals(weightKg float64, goal string) MacroTotals {
	if weightKg <= 0 {
		weightKg = DefaultWeightKg
	}
	factor := 1.2
	if goal == "Похудение" {
		factor = 0.8
	}
	return MacroTotals{
		Calories: int(math.Round(weightKg * 24 * factor)),
		Protein:  int(math.Round(weightKg * 2)),
		Carbs:    int(math.Round(weightKg * 3)),
		Fats:     int(math.Round(weightKg * 1)),
	}
}

// GroupByDay buckets entries by the UTC calendar date of their timestamp and
// returns one aggregate per day, newest day first. The day key deliberately
// ignores the client timezone: history has always grouped on UTC dates even
// though the today-window is timezone-corrected, and the front end depends
// on that grouping.
func GroupByDay(entries []models.NutritionLog) []DayAggregate {
	grouped := make(map[string]*DayAggregate)
	var order []string

	for _, e := range entries {
		ts := e.CreatedAt.UTC()
		key := ts.Format("2006-01-02")
		agg, ok := grouped[key]
		if !ok {
			agg = &DayAggregate{Date: ts, Items: []HistoryItem{}}
			grouped[key] = agg
			order = append(order, key)
		}
		agg.TotalCalories += e.Calories
		agg.TotalProtein += e.Protein
		agg.TotalCarbs += e.Carbs
		agg.TotalFats += e.Fats
		agg.Items = append(agg.Items, HistoryItem{
			ID:       e.ID,
			UserID:   e.UserID,
			MealType: e.MealType,
			FoodName: e.FoodName,
			Calories: e.Calories,
			Protein:  e.Protein,
			Carbs:    e.Carbs,
			Fats:     e.Fats,
			Date:     ts.Format(time.RFC3339Nano),
		})
	}

	out := make([]DayAggregate, 0, len(order))
	for _, key := range order {
		out = append(out, *grouped[key])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// ---- store queries ----

func ListLogsSince(userID uint, since time.Time) ([]models.NutritionLog, error) {
	var logs []models.NutritionLog
	err := config.DB.
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at ASC").
		Find(&logs).Error
	return logs, err
}

func ListRecentLogs(userID uint, limit int) ([]models.NutritionLog, error) {
	if limit <= 0 {
		limit = 100
	}
	var logs []models.NutritionLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
