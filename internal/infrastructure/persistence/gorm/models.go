// Package gorm provides GORM models and repositories for the recipe catalog
// and the meal plan
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RecipeModel represents the GORM model for recipes
type RecipeModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	Position    int64     `gorm:"not null;index"`
	Title       string    `gorm:"type:varchar(255);not null;index"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(50);index"`
	PrepTime    string    `gorm:"type:varchar(50)"`
	CookTime    string    `gorm:"type:varchar(50)"`
	Servings    int       `gorm:"default:4"`
	Source      string    `gorm:"type:varchar(255)"`
	SourceURL   string    `gorm:"column:source_url;type:text"`
	Image       string    `gorm:"type:text"`

	Ingredients IngredientList `gorm:"type:json"`
	Steps       StepList       `gorm:"type:json"`
	Tags        StringSlice    `gorm:"type:json"`

	Favorite bool    `gorm:"default:false;index"`
	Rating   float64 `gorm:"default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for RecipeModel
func (RecipeModel) TableName() string {
	return "recipes"
}

// MealPlanEntryModel is one planned meal; the slot columns form the key
type MealPlanEntryModel struct {
	Kind     string         `gorm:"type:varchar(16);primaryKey"`
	Label    string         `gorm:"type:varchar(32);primaryKey"`
	MealType string         `gorm:"type:varchar(16);primaryKey"`
	RecipeID string         `gorm:"type:char(36);index"`
	Recipe   SnapshotColumn `gorm:"type:json"`

	CreatedAt time.Time
}

// TableName specifies the table name for MealPlanEntryModel
func (MealPlanEntryModel) TableName() string {
	return "meal_plan_entries"
}

// IngredientRecord is the stored form of an ingredient
type IngredientRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
	Note     string `json:"note,omitempty"`
}

// StepRecord is the stored form of a step
type StepRecord struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// SnapshotRecord is the stored form of a meal plan recipe snapshot
type SnapshotRecord struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Image    string  `json:"image,omitempty"`
	PrepTime string  `json:"prepTime,omitempty"`
	CookTime string  `json:"cookTime,omitempty"`
	Servings int     `json:"servings,omitempty"`
	Rating   float64 `json:"rating,omitempty"`
	Category string  `json:"category,omitempty"`
	Favorite bool    `json:"favorite,omitempty"`
}

// IngredientList custom type for the ingredients column
type IngredientList []IngredientRecord

// Scan implements the sql.Scanner interface
func (l *IngredientList) Scan(value interface{}) error {
	*l = IngredientList{}
	return scanJSON(value, l, "IngredientList")
}

// Value implements the driver.Valuer interface
func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return marshalString(l)
}

// StepList custom type for the steps column
type StepList []StepRecord

// Scan implements the sql.Scanner interface
func (l *StepList) Scan(value interface{}) error {
	*l = StepList{}
	return scanJSON(value, l, "StepList")
}

// Value implements the driver.Valuer interface
func (l StepList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return marshalString(l)
}

// StringSlice custom type for handling string arrays
type StringSlice []string

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	*s = StringSlice{}
	return scanJSON(value, s, "StringSlice")
}

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return marshalString(s)
}

// SnapshotColumn custom type for the meal plan snapshot column
type SnapshotColumn SnapshotRecord

// Scan implements the sql.Scanner interface
func (c *SnapshotColumn) Scan(value interface{}) error {
	*c = SnapshotColumn{}
	return scanJSON(value, c, "SnapshotColumn")
}

// Value implements the driver.Valuer interface
func (c SnapshotColumn) Value() (driver.Value, error) {
	return marshalString(c)
}

func scanJSON(value interface{}, dest interface{}, name string) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("cannot scan %T into %s", value, name)
	}
}

func marshalString(v interface{}) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}
