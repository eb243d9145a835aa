package models

import (
	"regexp"
	"strings"
)

// Property represents a single real-estate listing assembled from one
// Google Drive folder. It is built once during ingestion and never
// mutated afterwards; each refresh produces a fresh slice of records.
type Property struct {
	ID             string   `json:"id"`
	FolderName     string   `json:"folderName"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	Location       string   `json:"location"`
	Area           float64  `json:"area"`
	Bedrooms       int      `json:"bedrooms"`
	Bathrooms      int      `json:"bathrooms"`
	Type           string   `json:"type"`
	Status         string   `json:"status"`
	Badge          string   `json:"badge"`
	Featured       bool     `json:"featured"`
	Asesor         string   `json:"asesor"`
	TelefonoAsesor string   `json:"telefono_asesor"`
	Images         []string `json:"images"`
}

var folderPrefixRegex = regexp.MustCompile(`^\d+-`)

// TitleFromFolderName derives a display title from a folder name by
// stripping a leading "<digits>-" ordering prefix and replacing hyphens
// with spaces. Example: "01-Casa-Playa-Grande" -> "Casa Playa Grande".
func TitleFromFolderName(folderName string) string {
	title := folderPrefixRegex.ReplaceAllString(folderName, "")
	return strings.ReplaceAll(title, "-", " ")
}

// DefaultProperty builds the base record for a property folder with all
// fields at their defaults. The info file, if present, overrides these
// via utils.ParseInfoFile.
func DefaultProperty(folderID, folderName string) Property {
	return Property{
		ID:         folderID,
		FolderName: folderName,
		Title:      TitleFromFolderName(folderName),
		Type:       "apartamento",
		Status:     "venta",
		Images:     []string{},
	}
}
