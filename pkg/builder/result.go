package builder

import "fmt"

// Result reports what one run did.
type Result struct {
	// FilesProcessed counts source files whose metadata was resolved and
	// whose templates were applied.
	FilesProcessed int

	// LinksCreated counts links that came into existence.
	LinksCreated int

	// LinksSkipped counts destinations left alone under the Skip policy.
	LinksSkipped int

	// DirsCreated counts directories created under the link root,
	// including intermediate levels.
	DirsCreated int
}

// String renders the result as a one-line report.
func (r *Result) String() string {
	return fmt.Sprintf("%d files processed, %d links created, %d skipped, %d directories created",
		r.FilesProcessed, r.LinksCreated, r.LinksSkipped, r.DirsCreated)
}
