package nutrition

import "math"

// Fixed fallbacks applied when a profile field is absent or unparseable.
// The calculator must always produce a usable output.
const (
	defaultAge           = 30
	defaultWeightKG      = 75
	defaultGoalWeightKG  = 70
	defaultHeightCM      = 170
	defaultDaysToAchieve = 90

	// Moderate activity, the app has no activity-level input.
	activityMultiplier = 1.55

	// kcal per kg of fat mass, the standard deficit model constant.
	kcalPerKG = 7700

	// Safety floor: never recommend below 1200 kcal/day.
	calorieFloor = 1200
)

// TargetInput carries the profile fields the calculator reads. Zero or
// negative values are treated as absent and replaced by fixed fallbacks.
type TargetInput struct {
	Age           int
	Gender        string
	WeightKG      float64
	GoalWeightKG  float64
	HeightCM      float64
	DaysToAchieve int
}

// DailyTargets are the derived daily nutrition goals. They are recomputed
// each time metrics are viewed and never persisted.
type DailyTargets struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Fiber    int `json:"fiber"`
}

// CalculateDailyTargets computes calorie and macro targets from the
// profile biometrics using Mifflin-St Jeor BMR, a fixed moderate-activity
// TDEE multiplier, and a calorie-deficit-over-time model. Output calories
// never drop below the 1200 kcal safety floor.
func CalculateDailyTargets(in TargetInput) DailyTargets {
	age := in.Age
	if age <= 0 {
		age = defaultAge
	}
	weight := in.WeightKG
	if weight <= 0 {
		weight = defaultWeightKG
	}
	goalWeight := in.GoalWeightKG
	if goalWeight <= 0 {
		goalWeight = defaultGoalWeightKG
	}
	height := in.HeightCM
	if height <= 0 {
		height = defaultHeightCM
	}
	days := in.DaysToAchieve
	if days <= 0 {
		days = defaultDaysToAchieve
	}

	// Mifflin-St Jeor: +5 for male, -161 otherwise.
	bmr := 10*weight + 6.25*height - 5*float64(age)
	male := in.Gender == "male" || in.Gender == "Male"
	if male {
		bmr += 5
	} else {
		bmr -= 161
	}

	tdee := bmr * activityMultiplier

	totalDeficit := (weight - goalWeight) * kcalPerKG
	dailyDeficit := totalDeficit / float64(days)

	calories := tdee - dailyDeficit
	if calories < calorieFloor {
		calories = calorieFloor
	}

	protein := weight * 1.6
	fat := calories * 0.30 / 9
	carbs := (calories - protein*4 - fat*9) / 4
	if carbs < 0 {
		carbs = 0
	}

	fiber := 25.0
	if male {
		fiber += 5
	}

	return DailyTargets{
		Calories: int(math.Round(calories)),
		Protein:  int(math.Round(protein)),
		Carbs:    int(math.Round(carbs)),
		Fat:      int(math.Round(fat)),
		Fiber:    int(math.Round(fiber)),
	}
}
