package models

import "encoding/json"

// NutritionRecord is what the photo analysis returns for one image.
// It stays transient until the user logs it.
type NutritionRecord struct {
	DishName    string  `json:"dishName"`
	Calories    float64 `json:"calories"`
	Protein     Macro   `json:"protein"`
	Carbs       Macro   `json:"carbs"`
	Fat         Macro   `json:"fat"`
	HealthyTips string  `json:"healthyTips"`
}

// Macro is a macronutrient amount as reported by the model, e.g. "20g".
// Bare JSON numbers are accepted and kept in their textual form.
type Macro string

func (m *Macro) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*m = Macro(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*m = Macro(n.String())
	return nil
}
