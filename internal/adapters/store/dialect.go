package store

import (
	"database/sql/driver"
	"fmt"
	"strings"

	gosqlite "github.com/glebarez/go-sqlite"
	"gorm.io/gorm"
)

// sqliteLowerFunc folds text with Go's Unicode rules. SQLite's built-in
// LOWER only folds ASCII, so the column side of a search would not match
// a pattern lowered with strings.ToLower.
const sqliteLowerFunc = "unicode_lower"

func init() {
	gosqlite.MustRegisterDeterministicScalarFunction(sqliteLowerFunc, 1, unicodeLower)
}

func unicodeLower(_ *gosqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// likeEscaper escapes LIKE wildcards so user input matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// DialectName returns the active dialect.
func DialectName(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return ""
	}

	return db.Dialector.Name()
}

// IsSQLite reports whether db is a SQLite connection.
func IsSQLite(db *gorm.DB) bool {
	return DialectName(db) == DialectSQLite
}

// ContainsExpr returns a case-insensitive "column contains ?" condition.
// Pair it with ContainsPattern.
func ContainsExpr(db *gorm.DB, column string) string {
	if IsSQLite(db) {
		return fmt.Sprintf(`%s(%s) LIKE ? ESCAPE '\'`, sqliteLowerFunc, column)
	}

	return fmt.Sprintf(`%s ILIKE ? ESCAPE '\'`, column)
}

// ContainsPattern builds the LIKE argument for ContainsExpr.
func ContainsPattern(db *gorm.DB, query string) string {
	pattern := "%" + likeEscaper.Replace(query) + "%"
	if IsSQLite(db) {
		return strings.ToLower(pattern)
	}

	return pattern
}
