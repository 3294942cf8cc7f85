package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/linkfarm/pkg/builder"
	"github.com/arthur-debert/linkfarm/pkg/commands/build"
	"github.com/arthur-debert/linkfarm/pkg/output"
	"github.com/arthur-debert/linkfarm/pkg/output/styles"
)

// styled renders text through a named style when the output format calls
// for terminal decoration.
func styled(format output.Format, style, text string) string {
	if format != output.FormatTerminal {
		return text
	}
	return styles.Render(style, text)
}

// printBuildResult reports one build outcome, including the recorded
// operations for dry runs.
func printBuildResult(w io.Writer, format output.Format, result *build.Result) {
	if result.DryRun {
		fmt.Fprintln(w, styled(format, "Warning", MsgDryRunNotice))
		for _, op := range result.Operations {
			fmt.Fprintln(w, "  "+op.String())
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, styled(format, "Success", result.Result.String()))
}

// printWatchBuild reports one pass from the watch loop.
func printWatchBuild(w io.Writer, format output.Format, result *builder.Result) {
	fmt.Fprintln(w, styled(format, "Muted", result.String()))
}
