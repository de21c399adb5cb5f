package household

import (
	"math"

	"calk-kg/internal/errors"
)

// Sex selects the Mifflin-St Jeor constant
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// Activity is the daily activity level
type Activity string

const (
	ActivityMinimal Activity = "minimal"
	ActivityLow     Activity = "low"
	ActivityMedium  Activity = "medium"
	ActivityHigh    Activity = "high"
	ActivityExtreme Activity = "extreme"
)

// Goal adjusts the daily energy budget
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

var (
	ActivityMultipliers = map[Activity]float64{
		ActivityMinimal: 1.2,
		ActivityLow:     1.375,
		ActivityMedium:  1.55,
		ActivityHigh:    1.725,
		ActivityExtreme: 1.9,
	}
	GoalMultipliers = map[Goal]float64{
		GoalLose:     0.8,
		GoalMaintain: 1.0,
		GoalGain:     1.2,
	}
)

// Macro split of daily calories and energy per gram
const (
	proteinShare = 0.3
	fatShare     = 0.3
	carbShare    = 0.4

	kcalPerGramProtein = 4
	kcalPerGramFat     = 9
	kcalPerGramCarb    = 4
)

// CalorieInput is a person's profile
type CalorieInput struct {
	Sex      Sex      `json:"sex"`
	Age      float64  `json:"age"`
	HeightCm float64  `json:"height_cm"`
	WeightKg float64  `json:"weight_kg"`
	Activity Activity `json:"activity"`
	Goal     Goal     `json:"goal"`
}

// CalorieResult is rounded to whole kcal and grams
type CalorieResult struct {
	BMR      float64 `json:"bmr"`
	Daily    float64 `json:"daily_calories"`
	Proteins float64 `json:"proteins"`
	Fats     float64 `json:"fats"`
	Carbs    float64 `json:"carbs"`
}

// BMR is the Mifflin-St Jeor basal metabolic rate
func BMR(sex Sex, age, heightCm, weightKg float64) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*age
	if sex == Female {
		return base - 161
	}
	return base + 5
}

// Calories computes the daily energy budget and macros
func Calories(in CalorieInput) (CalorieResult, error) {
	am, ok := ActivityMultipliers[in.Activity]
	if !ok {
		return CalorieResult{}, errors.NotFound("activity", string(in.Activity))
	}
	gm, ok := GoalMultipliers[in.Goal]
	if !ok {
		return CalorieResult{}, errors.NotFound("goal", string(in.Goal))
	}
	if in.Age <= 0 || in.HeightCm <= 0 || in.WeightKg <= 0 {
		return CalorieResult{}, nil
	}

	bmr := BMR(in.Sex, in.Age, in.HeightCm, in.WeightKg)
	daily := bmr * am * gm
	return CalorieResult{
		BMR:      math.Round(bmr),
		Daily:    math.Round(daily),
		Proteins: math.Round(daily * proteinShare / kcalPerGramProtein),
		Fats:     math.Round(daily * fatShare / kcalPerGramFat),
		Carbs:    math.Round(daily * carbShare / kcalPerGramCarb),
	}, nil
}
