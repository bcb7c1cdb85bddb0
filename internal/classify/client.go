package classify

import (
	"context"
)

// Client turns raw menu text into a JSON classification payload:
// a mapping from category key to item list. Implementations own the
// transport; malformed output is the parser's problem, not theirs.
type Client interface {
	ClassifyMenu(ctx context.Context, menuText string) (string, error)
}
