package controllers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/services/assessment"
	"lms/services/catalog"
	"lms/services/certificate"
)

// GetCertificate returns the learner's certificate standing for a course.
// With no recorded attempt there is nothing to show and the learner is sent
// back to the dashboard.
func GetCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := uint(c.Locals("courseID").(int))
	db := database.Database.Db

	course, err := catalog.GetCourse(db, courseID)
	if err != nil {
		if err == catalog.ErrCourseNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	mark, err := assessment.LatestMark(db, userID, courseID)
	if err != nil {
		if err == assessment.ErrNoMark {
			return middleware.JsonResponse(c, fiber.StatusSeeOther, false, "Take the quiz first!", fiber.Map{
				"next": "/student/dashboard",
			})
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch mark!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate status fetched!", fiber.Map{
		"course":   course,
		"mark":     mark,
		"eligible": assessment.Eligible(mark),
	})
}

// DownloadCertificate streams the rendered certificate for an eligible
// learner; ineligible requests are redirected back to the certificate view.
func DownloadCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := uint(c.Locals("courseID").(int))
	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	course, err := catalog.GetCourse(db, courseID)
	if err != nil {
		if err == catalog.ErrCourseNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	mark, err := assessment.LatestMark(db, userID, courseID)
	if err != nil || !assessment.Eligible(mark) {
		return middleware.JsonResponse(c, fiber.StatusSeeOther, false, "Certificate not available!", fiber.Map{
			"next": fmt.Sprintf("/course/%d/certificate", courseID),
		})
	}

	cert, err := certificate.EnsureIssued(db, userID, courseID)
	if err != nil {
		log.Printf("Error issuing certificate for user %d course %d: %v", userID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}

	png, err := certificate.Render(certificate.Data{
		LearnerName: user.Name,
		CourseTitle: course.Title,
		Score:       mark.Score,
		Date:        cert.IssuedAt,
	}, config.AppConfig.CertFontPath)
	if err != nil {
		log.Printf("Error rendering certificate %s: %v", cert.CertificateNumber, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to render certificate!", nil)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="certificate_%d.png"`, courseID))
	return c.Send(png)
}
