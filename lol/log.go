// Package lol (log of location) is a simple logging library that prints a
// high precision timestamp and the source location of a log print to make
// tracing errors simpler. Includes a set of logging levels and the ability to
// filter out higher log levels for a more quiet output.
package lol

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"go.uber.org/atomic"
)

const (
	Off = iota
	Fatal
	Error
	Warn
	Info
	Debug
	Trace
)

var LevelNames = []string{
	"off",
	"fatal",
	"error",
	"warn",
	"info",
	"debug",
	"trace",
}

type (
	// Ln prints lists of interfaces with spaces in between.
	Ln func(a ...any)
	// F prints like fmt.Printf with the log prefix and location suffix.
	F func(format string, a ...any)
	// S prints a spew.Sdump of the provided values.
	S func(a ...any)
	// C accepts a closure so the formatting work is skipped when the level is
	// filtered out.
	C func(closure func() string)
	// Chk prints the error if it is not nil and returns whether it was.
	Chk func(e error) bool
	// Err constructs an error with fmt.Errorf and logs it at the site before
	// returning it.
	Err func(format string, a ...any) error

	// LevelPrinter is the set of log printers for one log level.
	LevelPrinter struct {
		Ln
		F
		S
		C
		Chk
		Err
	}

	// LevelSpec is the name, ID and colorizer of a log level.
	LevelSpec struct {
		ID        int
		Name      string
		Colorizer func(a ...any) string
	}
)

// LevelSpecs specifies the id, string name and color-printing function of each
// level.
var LevelSpecs = []LevelSpec{
	{Off, "", NoSprint},
	{Fatal, "FTL", color.New(color.BgRed, color.FgHiWhite).Sprint},
	{Error, "ERR", color.New(color.FgHiRed).Sprint},
	{Warn, "WRN", color.New(color.FgHiYellow).Sprint},
	{Info, "INF", color.New(color.FgHiGreen).Sprint},
	{Debug, "DBG", color.New(color.FgHiBlue).Sprint},
	{Trace, "TRC", color.New(color.FgHiMagenta).Sprint},
}

// NoSprint returns nothing no matter what is given to it.
func NoSprint(a ...any) string { return "" }

// Log is a set of log printers for the various levels.
type Log struct {
	F, E, W, I, D, T LevelPrinter
}

// Check is the set of error check printers, one per level.
type Check struct {
	F, E, W, I, D, T Chk
}

// Errorf is the set of log-and-return error constructors, one per level.
type Errorf struct {
	F, E, W, I, D, T Err
}

// Logger is a collection of the three printer sets.
type Logger struct {
	*Log
	*Check
	*Errorf
}

// Level is the level that the logger is printing at.
var Level atomic.Int32

// Main is the main logger.
var Main = &Logger{}

func init() {
	Main.Log, Main.Check, Main.Errorf = New(os.Stderr)
	Level.Store(Info)
}

// SetLogLevel sets the log level of the logger from its string name.
func SetLogLevel(level string) {
	for i := range LevelNames {
		if level == LevelNames[i] {
			Level.Store(int32(i))
			return
		}
	}
}

// GetLogLevel returns the log level number of a string log level.
func GetLogLevel(level string) (i int) {
	for i = range LevelNames {
		if level == LevelNames[i] {
			return i
		}
	}
	return Info
}

// JoinStrings joins together anything into a set of strings with space
// separating the items.
func JoinStrings(a ...any) (s string) {
	for i := range a {
		s += fmt.Sprint(a[i])
		if i < len(a)-1 {
			s += " "
		}
	}
	return
}

var msgCol = color.New(color.FgBlue).Sprint

func prefix(l int32) string {
	return msgCol(TimeStamper()) + LevelSpecs[l].Colorizer(LevelSpecs[l].Name)
}

// GetPrinter returns a full LevelPrinter that writes to the provided
// io.Writer.
func GetPrinter(l int32, writer io.Writer) LevelPrinter {
	return LevelPrinter{
		Ln: func(a ...any) {
			if Level.Load() < l {
				return
			}
			fmt.Fprintf(writer, "%s %s %s\n", prefix(l), JoinStrings(a...),
				msgCol(GetLoc(2)))
		},
		F: func(format string, a ...any) {
			if Level.Load() < l {
				return
			}
			fmt.Fprintf(writer, "%s %s %s\n", prefix(l),
				fmt.Sprintf(format, a...), msgCol(GetLoc(2)))
		},
		S: func(a ...any) {
			if Level.Load() < l {
				return
			}
			fmt.Fprintf(writer, "%s %s %s\n", prefix(l), spew.Sdump(a...),
				msgCol(GetLoc(2)))
		},
		C: func(closure func() string) {
			if Level.Load() < l {
				return
			}
			fmt.Fprintf(writer, "%s %s %s\n", prefix(l), closure(),
				msgCol(GetLoc(2)))
		},
		Chk: func(e error) bool {
			if e == nil {
				return false
			}
			if Level.Load() >= l {
				fmt.Fprintf(writer, "%s %s %s\n", prefix(l), e.Error(),
					msgCol(GetLoc(2)))
			}
			return true
		},
		Err: func(format string, a ...any) error {
			if Level.Load() >= l {
				fmt.Fprintf(writer, "%s %s %s\n", prefix(l),
					fmt.Sprintf(format, a...), msgCol(GetLoc(2)))
			}
			return fmt.Errorf(format, a...)
		},
	}
}

// New creates a new logger with all the levels and things.
func New(writer io.Writer) (l *Log, c *Check, errorf *Errorf) {
	l = &Log{
		T: GetPrinter(Trace, writer),
		D: GetPrinter(Debug, writer),
		I: GetPrinter(Info, writer),
		W: GetPrinter(Warn, writer),
		E: GetPrinter(Error, writer),
		F: GetPrinter(Fatal, writer),
	}
	c = &Check{
		F: l.F.Chk,
		E: l.E.Chk,
		W: l.W.Chk,
		I: l.I.Chk,
		D: l.D.Chk,
		T: l.T.Chk,
	}
	errorf = &Errorf{
		F: l.F.Err,
		E: l.E.Err,
		W: l.W.Err,
		I: l.I.Err,
		D: l.D.Err,
		T: l.T.Err,
	}
	return
}

// TimeStamper generates the timestamp prefix for logs.
func TimeStamper() (s string) {
	return time.Now().Format("2006-01-02T15:04:05Z07:00.000 ")
}

// GetLoc returns the code location of the caller.
func GetLoc(skip int) (output string) {
	_, file, line, _ := runtime.Caller(skip)
	output = fmt.Sprintf("%s:%d", file, line)
	return
}
