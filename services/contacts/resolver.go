package contacts

import (
	"strings"

	"sweetdots/models"

	"go.uber.org/zap"
)

// Roster column layout: full name, phone, email, availability, photo URL.
// The photo column is optional; older roster sheets stop at availability.
const (
	colName = iota
	colPhone
	colEmail
	colAvailability
	colPhoto
)

// Default synthesizes placeholder contact details for a first name with no
// roster row. The email is the lowercased name with spaces turned to dots.
func Default(name string) models.Contact {
	return models.Contact{
		Phone:        "555-0100",
		Email:        strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@email.com",
		Availability: "Not specified",
		Photo:        "👤",
	}
}

// Resolve joins ingested first names against the roster grid (header row
// plus one row per person). Each first name takes the first roster row whose
// lowercase full name starts with the lowercase first name; names with no
// match fall back to synthesized defaults. Passing a nil roster resolves
// everything to defaults, which is how a failed contacts fetch degrades.
func Resolve(roster [][]string, names []string, logger *zap.Logger) map[string]models.Contact {
	resolved := make(map[string]models.Contact, len(names))

	var rows [][]string
	if len(roster) > 1 {
		rows = roster[1:]
	}

	for _, name := range names {
		prefix := strings.ToLower(name)
		contact := Default(name)

		matches := 0
		for _, row := range rows {
			if len(row) == 0 {
				continue
			}
			fullName := strings.TrimSpace(row[colName])
			if fullName == "" || !strings.HasPrefix(strings.ToLower(fullName), prefix) {
				continue
			}
			matches++
			if matches > 1 {
				continue // first match wins; keep counting for the warning
			}
			contact.FullName = fullName
			if v := cell(row, colPhone); v != "" {
				contact.Phone = v
			}
			if v := cell(row, colEmail); v != "" {
				contact.Email = v
			}
			if v := cell(row, colAvailability); v != "" {
				contact.Availability = v
			}
			if v := cell(row, colPhoto); v != "" {
				contact.Photo = v
			}
		}
		if matches > 1 && logger != nil {
			logger.Warn("Ambiguous contact match; using the first roster row",
				zap.String("name", name), zap.Int("matches", matches))
		}
		resolved[name] = contact
	}
	return resolved
}

func cell(row []string, col int) string {
	if col < len(row) {
		return strings.TrimSpace(row[col])
	}
	return ""
}
