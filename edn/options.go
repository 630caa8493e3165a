package edn

const DefaultMaxDepth = 512

type readConfig struct {
	maxDepth   int
	sourceName string
}

type ReadOption func(*readConfig)

// MaxDepth bounds collection and prefix nesting. Non-positive values keep the default.
func MaxDepth(n int) ReadOption {
	return func(c *readConfig) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// SourceName is reported in error positions.
func SourceName(name string) ReadOption {
	return func(c *readConfig) {
		c.sourceName = name
	}
}
