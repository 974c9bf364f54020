package course

import "gorm.io/gorm"

// Course groups a set of modules under one department offering
type Course struct {
	gorm.Model
	Code        string `json:"code" gorm:"unique;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Department  string `json:"department" gorm:"default:'computer_science'"` // computer_science, math, natural_science
	Credits     int    `json:"credits" gorm:"default:0"`
	ModuleCount uint   `json:"module_count" gorm:"default:0"`

	Modules []Module `json:"modules,omitempty" gorm:"foreignKey:CourseID"`
}
