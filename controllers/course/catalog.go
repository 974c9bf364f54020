package controllers

import (
	"log"

	"coursereg/database"
	"coursereg/middleware"
	"coursereg/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists every course with its modules and their instructors.
func GetAllCourses(c *fiber.Ctx) error {
	var courses []course.Course
	if err := database.Database.Db.Preload("Modules").Preload("Modules.Instructor").Find(&courses).Error; err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	coursesData := make([]fiber.Map, 0, len(courses))
	for _, cr := range courses {
		coursesData = append(coursesData, coursePayload(cr))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", coursesData)
}

// GetCourseDetails fetches one course with its modules.
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var cr course.Course
	if err := database.Database.Db.Preload("Modules").Preload("Modules.Instructor").
		Where("id = ?", courseID).First(&cr).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", coursePayload(cr))
}

// GetModuleDetails fetches one module with its course and instructor.
func GetModuleDetails(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(uint)

	var m course.Module
	if err := database.Database.Db.Preload("Course").Preload("Instructor").
		Where("id = ?", moduleID).First(&m).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	payload := modulePayload(m)
	payload["course"] = fiber.Map{
		"id":    m.Course.ID,
		"code":  m.Course.Code,
		"title": m.Course.Title,
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module details fetched successfully!", payload)
}

// GetInstructors lists every instructor with the modules they teach.
func GetInstructors(c *fiber.Ctx) error {
	var instructors []course.Instructor
	if err := database.Database.Db.Preload("Modules").Find(&instructors).Error; err != nil {
		log.Printf("Error fetching instructors: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch instructors!", nil)
	}

	instructorsData := make([]fiber.Map, 0, len(instructors))
	for _, inst := range instructors {
		modules := make([]fiber.Map, 0, len(inst.Modules))
		for _, m := range inst.Modules {
			m.Instructor = inst
			modules = append(modules, modulePayload(m))
		}
		instructorsData = append(instructorsData, fiber.Map{
			"id":         inst.ID,
			"first_name": inst.FirstName,
			"last_name":  inst.LastName,
			"about":      inst.About,
			"department": inst.Department,
			"modules":    modules,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructors fetched successfully!", instructorsData)
}
