package models

// Recipe is a curated meal suggestion. Category is a meal type.
type Recipe struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Category    string  `gorm:"size:20;index" json:"category"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ImageURL    string  `json:"image_url,omitempty"`
}

func (Recipe) TableName() string { return "recipes" }
