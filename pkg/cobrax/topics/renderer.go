package topics

// Renderer formats topic content for terminal display.
type Renderer interface {
	// Render takes raw content and its file extension and returns the
	// formatted content.
	Render(content string, format string) string
}

// PlainRenderer returns content unchanged.
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
