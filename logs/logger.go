package logs

import (
	"context"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/reusee/tedn/cmds"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var level = new(slog.LevelVar)

func init() {
	for flag, l := range map[string]slog.Level{
		"-log-debug": slog.LevelDebug,
		"-log-info":  slog.LevelInfo,
		"-log-warn":  slog.LevelWarn,
		"-log-error": slog.LevelError,
	} {
		cmds.Define(flag, cmds.Func(func() {
			level.Set(l)
		}).Desc("set log level to "+strings.ToLower(l.String())))
	}
}

type Logger = *slog.Logger

func (Module) Logger(
	writer Writer,
) Logger {
	var handlers []slog.Handler

	// terminal, unless stderr goes to the journal anyway
	var terminal slog.Handler
	if !isSystemdService() {
		terminal = slog.NewTextHandler(
			writer,
			&slog.HandlerOptions{
				Level: level,
			},
		)
		handlers = append(handlers, terminal)
	}

	journal, err := newJournalHandler()
	if err != nil {
		if terminal != nil && terminal.Enabled(context.Background(), slog.LevelDebug) {
			record := slog.NewRecord(time.Now(), slog.LevelDebug, "systemd journal unavailable", 0)
			record.Add("error", err)
			_ = terminal.Handle(context.Background(), record)
		}
	} else {
		handlers = append(handlers, journal)
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}

func newJournalHandler() (slog.Handler, error) {
	return slogjournal.NewHandler(&slogjournal.Options{
		Level: level,
		ReplaceGroup: func(key string) string {
			return toJournalKey(key)
		},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
}

// toJournalKey maps attribute keys to the journal field charset.
func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	str = strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
	return str
}

func isSystemdService() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	parts := strings.Split(strings.TrimSpace(string(content)), ":")
	if len(parts) < 3 {
		return false
	}
	return strings.HasSuffix(path.Dir(parts[2]), ".service")
}
