package utils

import (
	"strconv"
	"strings"

	"inmobiliaria-premium/models"
)

// ParseInfoFile applies the key=value lines of an info.txt file on top of
// a base property record and returns the result. The base is not mutated.
//
// Line format: everything before the first '=' is the key (trimmed,
// lower-cased), everything after it is the value (trimmed, may itself
// contain '='). Blank lines, lines without '=' and lines with an empty
// value are skipped, so defaults survive. Repeated keys follow
// last-write-wins. Unknown keys are ignored.
func ParseInfoFile(content string, base models.Property) models.Property {
	data := base

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, "=") {
			continue
		}

		key, value, _ := strings.Cut(line, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		switch key {
		case "title", "titulo":
			data.Title = value
		case "description", "descripcion":
			data.Description = value
		case "price", "precio":
			data.Price = parseNumber(value)
		case "location", "ubicacion":
			data.Location = value
		case "area", "metros", "m2":
			data.Area = parseNumber(value)
		case "bedrooms", "habitaciones":
			data.Bedrooms = parseCount(value)
		case "bathrooms", "baños", "banos":
			data.Bathrooms = parseCount(value)
		case "type", "tipo":
			data.Type = strings.ToLower(value)
		case "status", "estado":
			data.Status = strings.ToLower(value)
		case "badge", "etiqueta":
			data.Badge = strings.ToUpper(value)
		case "featured", "destacado":
			data.Featured = strings.ToLower(value) == "true" || value == "1"
		case "asesor", "agente", "captador":
			data.Asesor = value
		case "telefono_asesor", "telefono", "tel_asesor":
			data.TelefonoAsesor = value
		}
	}

	return data
}

// parseNumber extracts a non-negative float from free-form text like
// "$120,000" or "85 m2". Anything that is not a digit or '.' is stripped
// before parsing; unparseable input yields 0, never an error.
func parseNumber(value string) float64 {
	var b strings.Builder
	for _, r := range value {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return n
}

// parseCount parses an integer count the way the info file expects:
// leading digits win ("3 grandes" -> 3), anything else is 0.
func parseCount(value string) int {
	digits := value
	for i, r := range value {
		if r < '0' || r > '9' {
			digits = value[:i]
			break
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}
