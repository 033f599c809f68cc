package repositories

import (
	"strings"

	"github.com/sbilibin2017/gw-translator/internal/logger"
)

// logQuery logs a query collapsed to a single line together with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
