package controllers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/services/catalog"
	courseValidator "lms/validators/course"
)

// SaveCourseOrder applies an administrator's drag-and-drop ordering to one
// category. Runs behind the admin guard like every other catalog mutation.
func SaveCourseOrder(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedReorder").(*courseValidator.ReorderBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := catalog.Reorder(database.Database.Db, reqData.Category, reqData.CourseIDs); err != nil {
		if err == catalog.ErrInvalidCategory {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category!", nil)
		}
		log.Printf("Error reordering %s courses: %v", reqData.Category, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update order!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order updated", nil)
}

// NormalizeCatalog runs the destructive catalog cleanup: Aptitude
// de-duplication, category trimming and order re-densification. Safe to run
// repeatedly.
func NormalizeCatalog(c *fiber.Ctx) error {
	db := database.Database.Db

	if err := catalog.Normalize(db); err != nil {
		log.Printf("Error normalizing catalog: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to normalize catalog!", nil)
	}

	counts := make(map[string]int64, len(models.Categories))
	for _, category := range models.Categories {
		var n int64
		if err := db.Model(&models.Course{}).Where("category = ?", category).Count(&n).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to count courses!", nil)
		}
		counts[category] = n
	}

	message := fmt.Sprintf("Cleaning complete! Now balanced: IT=%d, Business=%d, Aptitude=%d (duplicates removed).",
		counts[models.CategoryIT], counts[models.CategoryBusiness], counts[models.CategoryAptitude])
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, counts)
}
