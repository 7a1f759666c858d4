package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrintError writes a fatal error as "Error: <message>", in red when colored
func PrintError(out io.Writer, err error, colored bool) {
	if err == nil {
		return
	}

	msg := fmt.Sprintf("Error: %v", err)
	if colored {
		c := color.New(color.FgRed)
		c.EnableColor()
		msg = c.Sprint(msg)
	}

	fmt.Fprintln(out, msg)
}
