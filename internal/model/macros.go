package model

// MacroNutrients is a sum of calories and macro grams. It is not persisted.
type MacroNutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// ZeroMacros is the canonical zero value.
var ZeroMacros = MacroNutrients{}

// Add returns the field-wise sum of m and other.
func (m MacroNutrients) Add(other MacroNutrients) MacroNutrients {
	return MacroNutrients{
		Calories: m.Calories + other.Calories,
		Protein:  m.Protein + other.Protein,
		Carbs:    m.Carbs + other.Carbs,
		Fat:      m.Fat + other.Fat,
	}
}

// Sub returns the field-wise difference m - other.
func (m MacroNutrients) Sub(other MacroNutrients) MacroNutrients {
	return MacroNutrients{
		Calories: m.Calories - other.Calories,
		Protein:  m.Protein - other.Protein,
		Carbs:    m.Carbs - other.Carbs,
		Fat:      m.Fat - other.Fat,
	}
}
