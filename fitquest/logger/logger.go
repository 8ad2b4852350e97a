package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fitquest/fitquest-api/fitquest"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
)

type LogType string

const (
	TypeHTTP   LogType = "HTTP"
	TypeDB     LogType = "DB"
	TypeSystem LogType = "SYS"
	TypeError  LogType = "ERR"
)

// CustomHandler renders records as single colored lines:
//
//	[FitQuest] [15:04:05] [INFO] [HTTP] GET /api/character 200 user=... took=2ms
type CustomHandler struct {
	name   string
	opts   *slog.HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	color  bool
	attrs  []slog.Attr
	groups []string
}

// NewHandler creates a handler writing to w. A nil opts logs at Info and above.
func NewHandler(name string, w io.Writer, opts *slog.HandlerOptions) *CustomHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{Level: slog.LevelInfo}
	}
	_, isFile := w.(*os.File)
	return &CustomHandler{
		name:  name,
		opts:  opts,
		out:   w,
		mu:    &sync.Mutex{},
		color: isFile,
	}
}

// Setup builds the process logger from config and installs it as the slog default.
func Setup(name string, cfg fitquest.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level, AddSource: cfg.AddSource}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = NewHandler(name, os.Stdout, opts)
	}

	l := slog.New(handler)
	slog.SetDefault(l)
	return l
}

func (h *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	min := slog.LevelInfo
	if h.opts.Level != nil {
		min = h.opts.Level.Level()
	}
	return level >= min
}

func (h *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		if a.Key != "type" {
			a.Key = h.qualify(a.Key)
		}
		clone.attrs = append(clone.attrs, a)
	}
	return &clone
}

func (h *CustomHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}

func (h *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	levelColor, levelText := levelStyle(r.Level)

	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		if a.Key != "type" {
			a.Key = h.qualify(a.Key)
		}
		attrs = append(attrs, a)
		return true
	})

	logType := TypeSystem
	var b strings.Builder
	for _, a := range attrs {
		if a.Key == "type" {
			logType = typeFor(a.Value.String(), r.Level)
			continue
		}
		b.WriteString(" ")
		b.WriteString(a.Key)
		b.WriteString("=")
		b.WriteString(formatValue(a.Value))
	}
	if logType == TypeSystem && r.Level >= slog.LevelError {
		logType = TypeError
	}

	message := r.Message
	if h.opts.AddSource && r.PC != 0 {
		if src := r.Source(); src != nil {
			message = fmt.Sprintf("%s (%s:%d)", message, filepath.Base(src.File), src.Line)
		}
	}

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	var line string
	if h.color {
		line = fmt.Sprintf("%s[%s] [%s] [%s%s%s] [%s%s%s] %s%s%s\n",
			colorWhite, h.name, ts.Format("15:04:05"),
			levelColor, levelText, colorWhite,
			colorCyan, logType, colorWhite,
			message, b.String(), colorReset)
	} else {
		line = fmt.Sprintf("[%s] [%s] [%s] [%s] %s%s\n",
			h.name, ts.Format("15:04:05"), levelText, logType, message, b.String())
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, line)
	return err
}

func (h *CustomHandler) qualify(key string) string {
	if len(h.groups) == 0 {
		return key
	}
	return strings.Join(h.groups, ".") + "." + key
}

func levelStyle(level slog.Level) (string, string) {
	switch {
	case level >= slog.LevelError:
		return colorRed, "ERROR"
	case level >= slog.LevelWarn:
		return colorYellow, "WARN"
	case level >= slog.LevelInfo:
		return colorGreen, "INFO"
	default:
		return colorPurple, "DEBUG"
	}
}

func typeFor(value string, level slog.Level) LogType {
	switch value {
	case "http":
		return TypeHTTP
	case "db":
		return TypeDB
	case "error":
		return TypeError
	default:
		if level >= slog.LevelError {
			return TypeError
		}
		return TypeSystem
	}
}

func formatValue(v slog.Value) string {
	s := v.Resolve().String()
	if strings.ContainsAny(s, " \t\"") {
		return fmt.Sprintf("%q", s)
	}
	return s
}
