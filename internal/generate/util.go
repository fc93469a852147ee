package generate

import (
	"database/sql"
	"strings"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func joinPipe(urls []string) string {
	return strings.Join(urls, " | ")
}
