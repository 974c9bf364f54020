package controllers

import (
	"coursereg/models/course"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

// instructorPayload shapes an instructor's display fields.
func instructorPayload(i course.Instructor) fiber.Map {
	return fiber.Map{
		"id":         i.ID,
		"first_name": i.FirstName,
		"last_name":  i.LastName,
		"department": i.Department,
	}
}

// modulePayload shapes a module with its instructor for presentation.
func modulePayload(m course.Module) fiber.Map {
	return fiber.Map{
		"id":          m.ID,
		"courseId":    m.CourseID,
		"code":        m.Code,
		"title":       m.Title,
		"description": m.Description,
		"instructor":  instructorPayload(m.Instructor),
		"startDate":   m.StartDate.Format(dateLayout),
		"endDate":     m.EndDate.Format(dateLayout),
		"capacity":    m.Capacity,
		"enrolled":    m.Enrolled,
		"schedule":    m.Schedule,
		"location":    m.Location,
	}
}

// coursePayload shapes a course with its modules.
func coursePayload(cr course.Course) fiber.Map {
	modules := make([]fiber.Map, 0, len(cr.Modules))
	for _, m := range cr.Modules {
		modules = append(modules, modulePayload(m))
	}
	return fiber.Map{
		"id":           cr.ID,
		"code":         cr.Code,
		"title":        cr.Title,
		"description":  cr.Description,
		"department":   cr.Department,
		"credits":      cr.Credits,
		"module_count": cr.ModuleCount,
		"modules":      modules,
	}
}
