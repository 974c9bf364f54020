package course

import (
	"time"

	"gorm.io/gorm"
)

// Module is a capacity-bounded offering within a course. Enrolled is only
// ever written by the enrollment register path, via a conditional update
// that keeps enrolled <= capacity.
type Module struct {
	gorm.Model
	CourseID     uint      `json:"course_id" gorm:"index;not null"`
	InstructorID uint      `json:"instructor_id" gorm:"index;not null"`
	Code         string    `json:"code"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Capacity     uint      `json:"capacity" gorm:"not null"`
	Enrolled     uint      `json:"enrolled" gorm:"default:0"`
	Schedule     string    `json:"schedule"`
	Location     string    `json:"location"`

	Course     Course     `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Instructor Instructor `json:"-" gorm:"foreignKey:InstructorID;constraint:OnDelete:CASCADE"`
}
