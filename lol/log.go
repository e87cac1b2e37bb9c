// Package lol (log of location) is the logger used across the key codecs. It
// prints a timestamp, a level tag and the source location of each print, and
// can filter out the noisier levels.
//
// Codec packages reach it through a package local util.go:
//
//	var log, chk, errorf = lol.Main.Log, lol.Main.Check, lol.Main.Errorf
package lol

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
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

var LevelNames = []string{"off", "fatal", "error", "warn", "info", "debug", "trace"}

type (
	// Ln prints its arguments separated by spaces.
	Ln func(a ...any)
	// F prints like fmt.Printf.
	F func(format string, a ...any)
	// S prints a spew dump of its arguments.
	S func(a ...any)
	// C only runs the closure if the level is printing.
	C func(closure func() string)
	// Chk prints the error if it is not nil and reports whether it was.
	Chk func(e error) bool
	// Err builds an error with fmt.Errorf and prints it at the level.
	Err func(format string, a ...any) error

	// LevelPrinter is the set of printers for one level.
	LevelPrinter struct {
		Ln
		F
		S
		C
		Chk
		Err
	}

	// LevelSpec is the id, tag and colorizer of a level.
	LevelSpec struct {
		ID        int
		Name      string
		Colorizer func(a ...any) string
	}
)

var LevelSpecs = []LevelSpec{
	{Off, "", func(a ...any) string { return "" }},
	{Fatal, "FTL", color.New(color.BgRed, color.FgHiWhite).Sprint},
	{Error, "ERR", color.New(color.FgHiRed).Sprint},
	{Warn, "WRN", color.New(color.FgHiYellow).Sprint},
	{Info, "INF", color.New(color.FgHiGreen).Sprint},
	{Debug, "DBG", color.New(color.FgHiBlue).Sprint},
	{Trace, "TRC", color.New(color.FgHiMagenta).Sprint},
}

// Log holds a printer per level.
type Log struct{ F, E, W, I, D, T LevelPrinter }

// Check holds an error check per level.
type Check struct{ F, E, W, I, D, T Chk }

// Errorf holds an error constructor per level.
type Errorf struct{ F, E, W, I, D, T Err }

// Logger bundles the three views of the same set of printers.
type Logger struct {
	*Log
	*Check
	*Errorf
}

var (
	// Level is the highest level that prints.
	Level atomic.Int32
	// NoTimeStamp drops the timestamp prefix, handy for CLI output.
	NoTimeStamp atomic.Bool

	Main = &Logger{}

	msgCol = color.New(color.FgBlue).Sprint
)

func init() {
	Main.Log, Main.Check, Main.Errorf = New(os.Stderr)
	SetLoggers(Info)
}

// SetLoggers sets the level by number.
func SetLoggers(level int) {
	if level < Off || level > Trace {
		level = Info
	}
	Level.Store(int32(level))
	Main.Log.T.F("log level %s", LevelSpecs[level].Colorizer(LevelNames[level]))
}

// GetLogLevel returns the number of a named level, Info if it is unknown.
func GetLogLevel(level string) (i int) {
	level = strings.ToLower(strings.TrimSpace(level))
	for i = range LevelNames {
		if level == LevelNames[i] {
			return
		}
	}
	return Info
}

// SetLogLevel sets the level by name.
func SetLogLevel(level string) { SetLoggers(GetLogLevel(level)) }

// New creates the printers for every level writing to w.
func New(w io.Writer) (l *Log, c *Check, e *Errorf) {
	l = &Log{
		F: GetPrinter(Fatal, w),
		E: GetPrinter(Error, w),
		W: GetPrinter(Warn, w),
		I: GetPrinter(Info, w),
		D: GetPrinter(Debug, w),
		T: GetPrinter(Trace, w),
	}
	c = &Check{F: l.F.Chk, E: l.E.Chk, W: l.W.Chk, I: l.I.Chk, D: l.D.Chk, T: l.T.Chk}
	e = &Errorf{F: l.F.Err, E: l.E.Err, W: l.W.Err, I: l.I.Err, D: l.D.Err, T: l.T.Err}
	return
}

// GetPrinter returns the printers of level l writing to w.
func GetPrinter(l int32, w io.Writer) LevelPrinter {
	// skip 3 lands on the caller of the printer func.
	emit := func(skip int, s string) {
		_, _ = fmt.Fprintf(w, "%s%s %s %s\n",
			msgCol(TimeStamper()),
			LevelSpecs[l].Colorizer(LevelSpecs[l].Name),
			s,
			msgCol(GetLoc(skip)),
		)
	}
	on := func() bool { return Level.Load() >= l }
	return LevelPrinter{
		Ln: func(a ...any) {
			if on() {
				emit(3, JoinStrings(a...))
			}
		},
		F: func(format string, a ...any) {
			if on() {
				emit(3, fmt.Sprintf(format, a...))
			}
		},
		S: func(a ...any) {
			if on() {
				emit(3, spew.Sdump(a...))
			}
		},
		C: func(closure func() string) {
			if on() {
				emit(3, closure())
			}
		},
		Chk: func(e error) bool {
			if e == nil {
				return false
			}
			if on() {
				emit(3, e.Error())
			}
			return true
		},
		Err: func(format string, a ...any) error {
			err := fmt.Errorf(format, a...)
			if on() {
				emit(3, err.Error())
			}
			return err
		},
	}
}

// JoinStrings renders the arguments separated by a space.
func JoinStrings(a ...any) string {
	s := make([]string, len(a))
	for i := range a {
		s[i] = fmt.Sprint(a[i])
	}
	return strings.Join(s, " ")
}

// TimeStamper generates the timestamp prefix.
func TimeStamper() (s string) {
	if NoTimeStamp.Load() {
		return
	}
	return time.Now().Format("2006-01-02T15:04:05.000Z07:00 ")
}

// GetLoc returns the file:line of the frame skip levels up.
func GetLoc(skip int) string {
	_, file, line, _ := runtime.Caller(skip)
	return fmt.Sprintf("%s:%d", file, line)
}
