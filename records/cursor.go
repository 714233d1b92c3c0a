package records

import (
	"strconv"
	"strings"

	"github.com/riteshgharti333/hospital-management-app-sub001/errs"
)

// ParseCursor converts the opaque cursor token received from a client into
// the form Page expects. An empty or blank token means "from the beginning"
// and yields a nil cursor; a malformed token is rejected with errs.ErrBadInput
// before any query runs.
//
// Cursors are entity-scoped: a token from one entity's page is meaningless
// against another entity. A cursor pointing at a row that has since been
// deleted stays valid; pagination simply resumes after its value.
func ParseCursor(token string) (*int64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return nil, errs.BadInputf("malformed cursor %q", token)
	}
	return &v, nil
}

// CursorToken renders a cursor value as the opaque token handed to clients.
func CursorToken(v int64) string {
	return strconv.FormatInt(v, 10)
}
