package llm

// Source tags generated content with the path that produced it, so callers
// branch on an explicit variant instead of inspecting suppressed errors.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)
