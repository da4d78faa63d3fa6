package specification

import "gorm.io/gorm"

// CityLike matches the city by case-insensitive substring.
type CityLike struct {
	City string
}

func (s CityLike) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("city ILIKE ?", "%"+s.City+"%")
}

// BudgetAtLeast keeps posts whose minimum budget meets the floor.
type BudgetAtLeast struct {
	Min int
}

func (s BudgetAtLeast) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("budget_min >= ?", s.Min)
}

// BudgetAtMost keeps posts whose maximum budget fits the ceiling.
type BudgetAtMost struct {
	Max int
}

func (s BudgetAtMost) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("budget_max <= ?", s.Max)
}

type GenderIs struct {
	Gender string
}

func (s GenderIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("gender = ?", s.Gender)
}

type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
