package course

import "gorm.io/gorm"

// Instructor teaches one or more modules
type Instructor struct {
	gorm.Model
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	About      string `json:"about"`
	Department string `json:"department" gorm:"default:'computer_science'"`

	Modules []Module `json:"modules,omitempty" gorm:"foreignKey:InstructorID"`
}
