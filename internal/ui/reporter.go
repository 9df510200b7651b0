// Package ui renders console output and mirrors every emitted line to an
// optional timestamped log sink. The console honors quiet/verbose; the log
// is always complete; errors always reach the console.
package ui

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Reporter is the single output path for the whole run.
type Reporter struct {
	out     io.Writer
	sink    *log.Logger
	closer  io.Closer
	quiet   bool
	verbose bool
	styled  bool
}

// Options configures a Reporter.
type Options struct {
	Quiet   bool
	Verbose bool

	// LogFile, when non-empty, receives a timestamped mirror of every line.
	LogFile string

	// Out defaults to os.Stdout.
	Out io.Writer

	// NoColor forces plain output even on a terminal.
	NoColor bool
}

// NewReporter builds a Reporter. When LogFile is set the sink is a
// size-capped rotating file, appended across runs.
func NewReporter(opts Options) *Reporter {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	styled := !opts.NoColor
	if f, ok := out.(*os.File); ok {
		styled = styled && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	} else {
		styled = false
	}

	r := &Reporter{
		out:     out,
		quiet:   opts.Quiet,
		verbose: opts.Verbose,
		styled:  styled,
	}

	if opts.LogFile != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.LogFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
		}
		r.sink = log.New(lj, "", log.LstdFlags)
		r.closer = lj
	}

	return r
}

// Close flushes and closes the log sink, if any.
func (r *Reporter) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

func (r *Reporter) mirror(line string) {
	if r.sink != nil {
		r.sink.Print(line)
	}
}

func (r *Reporter) console(line string) {
	fmt.Fprintln(r.out, line)
}

// Header prints a category header.
func (r *Reporter) Header(name string) {
	r.mirror("== " + name)
	if r.quiet {
		return
	}
	if r.styled {
		name = styleHeader.Render(name)
	}
	r.console("\n" + name)
}

// Item prints one candidate preview line.
func (r *Reporter) Item(displayPath string, size int64) {
	line := fmt.Sprintf("  %s (%s)", displayPath, HumanSize(size))
	r.mirror(line)
	if !r.quiet {
		r.console(line)
	}
}

// Info prints a normal status line.
func (r *Reporter) Info(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	r.mirror(line)
	if !r.quiet {
		r.console(line)
	}
}

// Verbose prints only in verbose mode; the log still gets the line.
func (r *Reporter) Verbose(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	r.mirror(line)
	if r.verbose && !r.quiet {
		if r.styled {
			line = styleMuted.Render(line)
		}
		r.console(line)
	}
}

// Warn prints a warning line (suppressed by quiet, mirrored always).
func (r *Reporter) Warn(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	r.mirror("WARN " + line)
	if !r.quiet {
		if r.styled {
			line = styleWarning.Render(line)
		}
		r.console(line)
	}
}

// Error prints an error line. Errors ignore quiet: they always display.
func (r *Reporter) Error(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	r.mirror("ERROR " + line)
	if r.styled {
		line = styleError.Render(line)
	}
	r.console(line)
}

// Success prints a green line (suppressed by quiet, mirrored always).
func (r *Reporter) Success(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	r.mirror(line)
	if !r.quiet {
		if r.styled {
			line = styleSuccess.Render(line)
		}
		r.console(line)
	}
}
