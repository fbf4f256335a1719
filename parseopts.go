package symexpr

import "strconv"

// DefaultMaxDepth is the default limit on how deeply the parser recurses.
const DefaultMaxDepth = 256

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// parsectx holds the settings for one parse.
type parsectx struct {
	// maxDepth is the deepest the parser may recurse. Each operator split and
	// each symbol parameter is one level.
	maxDepth int
}

type depthopt int

// MaxDepth limits how deeply the parser recurses. Inputs that need more
// levels, like long chains of operators or deeply nested symbol parameters,
// fail with a *SyntaxError. Panics if n is not positive.
func MaxDepth(n int) ParseOption {
	if n <= 0 {
		panic("symexpr: max depth must be positive, not " + strconv.Itoa(n))
	}
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxDepth = int(o)
	return p
}
