package logger

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/mingrammer/cfmt"
)

// Console writes colored warnings to Out, or to stderr when Out is nil
type Console struct {
	Out io.Writer
}

// Discard drops every warning
var Discard = &Console{Out: ioutil.Discard}

// NewConsole creates a console logger writing to w
func NewConsole(w io.Writer) *Console {
	return &Console{Out: w}
}

// Warningf writes a warning line and returns the write error, if any
func (c *Console) Warningf(format string, a ...interface{}) error {
	out := c.Out
	if out == nil {
		out = os.Stderr
	}
	_, err := fmt.Fprintln(out, cfmt.Swarningf(format, a...))
	return err
}
