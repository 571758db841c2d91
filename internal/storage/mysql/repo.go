// Package mysql stores each entity as a document-style row; set-valued
// fields (helpful voters, favorites, trip entries) live in JSON columns.
package mysql

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

type rowScanner interface{ Scan(dest ...any) error }

func lowerLike(s string) string { return strings.ToLower(s) }

// isDuplicate reports a unique-key violation (MySQL error 1062).
func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

func marshalJSON(v any) any {
	b, err := json.Marshal(v)
	if err != nil || string(b) == "null" {
		return nil
	}
	return string(b)
}

func unmarshalJSON(b []byte, dst any) {
	if len(b) == 0 {
		return
	}
	_ = json.Unmarshal(b, dst)
}
