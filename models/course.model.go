package models

import "gorm.io/gorm"

const (
	CategoryAptitude = "Aptitude"
	CategoryIT       = "IT"
	CategoryBusiness = "Business"
)

// Categories lists every valid course category.
var Categories = []string{CategoryAptitude, CategoryIT, CategoryBusiness}

// AptitudeTitles are the three canonical Aptitude courses. They are seeded at
// migration and the catalog never holds more than one course per title.
var AptitudeTitles = []string{
	"Logical Aptitude",
	"Quantitative Aptitude",
	"Communication Aptitude",
}

// Course represents a catalog course. OrderIndex controls display order
// within a category; it is dense 0..n-1 only right after a reorder or a
// catalog normalization.
type Course struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url"`
	Category    string `json:"category" gorm:"index;not null"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
}

// ValidCategory reports whether category is one of the known three.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
