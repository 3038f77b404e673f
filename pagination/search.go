package pagination

import (
	"strings"

	"gorm.io/gorm"
)

const likeEscape = "!"

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// ContainsFold is a gorm scope matching rows where any of columns contains
// text, ignoring case. An empty text leaves the query untouched.
func ContainsFold(text string, columns ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if text == "" || len(columns) == 0 {
			return db
		}

		pattern := "%" + likeEscaper.Replace(strings.ToLower(text)) + "%"
		clauses := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, col := range columns {
			clauses[i] = "LOWER(" + col + ") LIKE ? ESCAPE '" + likeEscape + "'"
			args[i] = pattern
		}

		return db.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
}
