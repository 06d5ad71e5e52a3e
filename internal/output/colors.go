package output

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// colorProfile is resolved once at startup. Colors are disabled when stdout
// is not a terminal or NO_COLOR is set.
var colorProfile = func() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}()

func colorize(text, color string) string {
	return termenv.String(text).Foreground(colorProfile.Color(color)).String()
}

// ColorBranchName colors a branch name based on whether it's current
func ColorBranchName(branchName string, isCurrent bool) string {
	if isCurrent {
		return colorize(branchName+" (current)", "6")
	}
	return colorize(branchName, "12")
}

// ColorNeedsUpdate colors the "needs update" marker
func ColorNeedsUpdate(text string) string {
	return colorize(text, "3")
}

// ColorDirty colors the dirty-tip marker
func ColorDirty(text string) string {
	return colorize(text, "1")
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return colorize(text, "8")
}

// ColorMagenta colors text magenta
func ColorMagenta(text string) string {
	return colorize(text, "5")
}
