package models

import (
	"database/sql/driver"
	"fmt"
	"strings"

	go_sqlite "github.com/glebarez/go-sqlite"
	"golang.org/x/text/cases"
	"gorm.io/gorm"
)

// sqliteFold is the SQL function that case folds text on SQLite. The
// built-in LOWER only folds ASCII letters.
const sqliteFold = "casefold"

func init() {
	go_sqlite.MustRegisterDeterministicScalarFunction(sqliteFold, 1, func(_ *go_sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		switch v := args[0].(type) {
		case nil:
			return nil, nil
		case string:
			return cases.Fold().String(v), nil
		case []byte:
			return cases.Fold().String(string(v)), nil
		default:
			return nil, fmt.Errorf("%s: unsupported argument of type %T", sqliteFold, v)
		}
	})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes the wildcards of a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Contains restricts a query to rows where column contains s, ignoring case.
// Wildcards in s match literally.
func Contains(column, s string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if db.Dialector.Name() == "postgres" {
			return db.Where(fmt.Sprintf("%s ILIKE ? ESCAPE '\\'", column), "%"+escapeLike(s)+"%")
		}

		pattern := "%" + escapeLike(cases.Fold().String(s)) + "%"
		return db.Where(fmt.Sprintf("%s(%s) LIKE ? ESCAPE '\\'", sqliteFold, column), pattern)
	}
}
