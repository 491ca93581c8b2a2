package utils

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"
	"sync"
	"time"
)

var logLock sync.Mutex

// Logger writes one line per entry: time|level|file:line|id|msg.
// Plain drops the time and caller columns.
type Logger struct {
	ID    string
	Out   io.Writer
	Plain bool
}

func (l *Logger) log(calldepth int, level string, params ...any) {
	var msg strings.Builder
	for i, p := range params {
		fmt.Fprintf(&msg, "%+v", p)
		if i != len(params)-1 {
			msg.WriteByte(' ')
		}
	}

	out := l.Out
	if out == nil {
		out = os.Stdout
	}

	logLock.Lock()
	defer logLock.Unlock()
	if l.Plain {
		fmt.Fprintf(out, "%s|%s|%s\n", level, l.ID, msg.String())
		return
	}
	var now = time.Now().Format("2006-01-02 15:04:05")
	_, file, line, _ := runtime.Caller(calldepth)
	fmt.Fprintf(out, "%s|%s|%s:%d|%s|%s\n", now, level, path.Base(file), line, l.ID, msg.String())
}

func (l *Logger) Print(params ...any) {
	l.log(2, "inf", params...)
}

func (l *Logger) Printf(format string, params ...any) {
	l.log(2, "inf", fmt.Sprintf(format, params...))
}

func (l *Logger) Warn(params ...any) {
	l.log(2, "wrn", params...)
}

func (l *Logger) Warnf(format string, params ...any) {
	l.log(2, "wrn", fmt.Sprintf(format, params...))
}

func (l *Logger) Error(params ...any) {
	l.log(2, "err", params...)
}

func (l *Logger) Errorf(format string, params ...any) {
	l.log(2, "err", fmt.Sprintf(format, params...))
}
