package certificate

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/fogleman/gg"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lms/models"
)

// Data is everything the renderer needs for one certificate.
type Data struct {
	LearnerName string
	CourseTitle string
	Score       int
	Date        time.Time
}

const (
	pageWidth  = 1240
	pageHeight = 877 // A4 landscape at ~105 dpi
)

// Render draws the certificate as a PNG and returns the encoded bytes.
// fontPath must point to a TTF file readable by the process.
func Render(data Data, fontPath string) ([]byte, error) {
	dc := gg.NewContext(pageWidth, pageHeight)

	dc.SetHexColor("#fffdf6")
	dc.Clear()

	// Double golden border
	dc.SetHexColor("#d4af37")
	dc.SetLineWidth(6)
	dc.DrawRectangle(40, 40, pageWidth-80, pageHeight-80)
	dc.Stroke()
	dc.SetLineWidth(2)
	dc.DrawRectangle(56, 56, pageWidth-112, pageHeight-112)
	dc.Stroke()

	cx := float64(pageWidth) / 2

	if err := dc.LoadFontFace(fontPath, 48); err != nil {
		return nil, fmt.Errorf("load certificate font: %w", err)
	}
	dc.SetHexColor("#b8860b")
	dc.DrawStringAnchored("Certificate of Completion", cx, 170, 0.5, 0.5)

	if err := dc.LoadFontFace(fontPath, 24); err != nil {
		return nil, err
	}
	dc.SetHexColor("#333333")
	dc.DrawStringAnchored("This certifies that", cx, 260, 0.5, 0.5)

	if err := dc.LoadFontFace(fontPath, 42); err != nil {
		return nil, err
	}
	dc.SetHexColor("#b8860b")
	dc.DrawStringAnchored(data.LearnerName, cx, 340, 0.5, 0.5)

	if err := dc.LoadFontFace(fontPath, 24); err != nil {
		return nil, err
	}
	dc.SetHexColor("#333333")
	dc.DrawStringAnchored("has successfully completed the course", cx, 420, 0.5, 0.5)

	if err := dc.LoadFontFace(fontPath, 34); err != nil {
		return nil, err
	}
	dc.SetHexColor("#8b0000")
	dc.DrawStringAnchored(data.CourseTitle, cx, 490, 0.5, 0.5)

	if err := dc.LoadFontFace(fontPath, 20); err != nil {
		return nil, err
	}
	dc.SetHexColor("#555555")
	dc.DrawStringAnchored(fmt.Sprintf("Score: %d", data.Score), cx, 560, 0.5, 0.5)
	dc.DrawStringAnchored("Date: "+data.Date.Format("2006-01-02"), cx, 600, 0.5, 0.5)

	// Signature lines
	dc.SetHexColor("#333333")
	dc.SetLineWidth(2)
	dc.DrawLine(160, 740, 480, 740)
	dc.DrawLine(760, 740, 1080, 740)
	dc.Stroke()
	if err := dc.LoadFontFace(fontPath, 16); err != nil {
		return nil, err
	}
	dc.DrawStringAnchored("Instructor", 320, 765, 0.5, 0.5)
	dc.DrawStringAnchored("Authorized Signature", 920, 765, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EnsureIssued returns the learner's certificate record for a course,
// creating one with a fresh certificate number on first download.
func EnsureIssued(db *gorm.DB, userID, courseID uint) (models.Certificate, error) {
	var cert models.Certificate
	err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&cert).Error
	if err == nil {
		return cert, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Certificate{}, err
	}

	cert = models.Certificate{
		UserID:            userID,
		CourseID:          courseID,
		CertificateNumber: uuid.NewString(),
		IssuedAt:          time.Now().UTC(),
	}
	if err := db.Create(&cert).Error; err != nil {
		return models.Certificate{}, err
	}
	return cert, nil
}
