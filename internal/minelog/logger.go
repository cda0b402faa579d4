package minelog

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures a Logger. An empty LogFile logs to stderr.
type Options struct {
	LogFile string
	Level   logrus.Level
}

// Logger wraps a logrus.Logger with the task-correlation helper the
// miner's per-candidate diagnostics use.
type Logger struct {
	*logrus.Logger
}

// New builds a Logger per opts. A non-empty LogFile routes output through
// a lumberjack.Logger so long-running mining jobs don't grow one file
// without bound.
func New(opts Options) *Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(opts.Level)

	if opts.LogFile != "" {
		l.SetOutput(&lumberjack.Logger{
			Filename:   opts.LogFile,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	} else {
		l.SetOutput(os.Stderr)
	}

	return &Logger{Logger: l}
}

// Task returns a logrus.Entry pre-populated with the correlation fields
// every per-candidate diagnostic line carries: its own trace id, the
// sequence number of the pattern that spawned it, and its recursion depth.
// The trace id never appears in emitted pattern records — it
// exists only to correlate log lines for one recursive branch.
func (l *Logger) Task(taskID string, parentSeq int, depth int) *logrus.Entry {
	return l.WithFields(logrus.Fields{
		"task_id":    taskID,
		"parent_seq": parentSeq,
		"depth":      depth,
	})
}
