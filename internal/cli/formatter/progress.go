package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"

	// progressBarWidth matches the Completion column of the analytics table.
	progressBarWidth = 16
)

// RenderProgress renders a completion bar like [████░░░░]  45% from a whole
// percentage. Green from 66, yellow from 33, red below.
func RenderProgress(percentage, width int) string {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	if width < 2 {
		width = 2
	}

	filled := width * percentage / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case percentage < 33:
		style = StyleRed
	case percentage < 66:
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3d%%", style.Render(bar), percentage)
}
