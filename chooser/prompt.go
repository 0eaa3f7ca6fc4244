package chooser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompt presents a numbered list on Out and reads the choice from In.
// Zero, an empty line, EOF or anything unrecognised cancels.
type Prompt struct {
	In  io.Reader
	Out io.Writer
}

func (p Prompt) Present(title, message string, options []Option, cancelLabel string, cancel func()) {
	fmt.Fprintln(p.Out, title)
	if message != "" {
		fmt.Fprintln(p.Out, message)
	}
	for i, o := range options {
		fmt.Fprintf(p.Out, "  %d) %s\n", i+1, o.Label)
	}
	fmt.Fprintf(p.Out, "  0) %s\n> ", cancelLabel)

	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && line == "" {
		cancel()
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 || n > len(options) {
		cancel()
		return
	}
	options[n-1].Select()
}
