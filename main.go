// Command tuicore hosts a single PTY-backed session against the
// controlling terminal: it raises the terminal into raw mode, spawns
// the requested command behind a PTY, and pumps bytes in both
// directions until the child exits.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"tuicore/asyncrt"
	"tuicore/config"
	"tuicore/geom"
	"tuicore/logx"
	"tuicore/pty"
	"tuicore/render"
	"tuicore/session"
	"tuicore/term"
)

func main() {
	defer term.Recover()
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "tuicore:", err)
		os.Exit(1)
	}
}

func run(argv []string) error {
	cfg := loadConfig()
	configureLogging(cfg.LogLevel)

	if len(argv) == 0 {
		argv = []string{shell()}
	}

	cols, rows := cfg.DefaultCols, cfg.DefaultRows
	if w, h, err := term.Size(os.Stdout); err == nil {
		cols, rows = uint16(w), uint16(h)
	}

	rt := asyncrt.New(cfg.WorkerPoolSize)
	mgr := session.NewManager(rt, cfg.SessionChannelSize)

	printBanner(cfg, cols, argv)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handle, err := mgr.Spawn(ctx, pty.Config{Argv: argv, Cols: cols, Rows: rows, Echo: true})
	if err != nil {
		return fmt.Errorf("spawn: %w", err)
	}
	defer mgr.Release(handle)

	guard, err := term.Acquire(os.Stdin, os.Stdout, term.Options{})
	if err != nil {
		return fmt.Errorf("acquire terminal: %w", err)
	}
	defer guard.Release()

	go pumpStdin(ctx, mgr, handle)

	for {
		h, ev, ok := mgr.TryNextEvent()
		if !ok {
			asyncrt.Yield()
			continue
		}
		if h != handle {
			continue
		}
		switch ev.Kind {
		case session.EventData:
			os.Stdout.Write(ev.Bytes)
			mgr.RecycleEvent(ev)
		case session.EventExit:
			return nil
		}
	}
}

// pumpStdin forwards raw bytes read from stdin to the session until
// ctx is canceled or stdin closes.
func pumpStdin(ctx context.Context, mgr *session.Manager, h session.Handle) {
	buf := make([]byte, 4096)
	for {
		if ctx.Err() != nil {
			return
		}
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			if _, werr := mgr.Write(h, buf[:n]); werr != nil {
				logx.With("component", "main").Warn("write to session failed", "err", werr)
				return
			}
		}
		if err != nil {
			return
		}
	}
}

func loadConfig() config.Config {
	path := os.Getenv("TUICORE_CONFIG")
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		logx.With("component", "main").Warn("config load failed, using defaults", "path", path, "err", err)
		return config.Default()
	}
	return cfg
}

// printBanner renders a one-line startup banner through the render
// pipeline, honoring the configured backend preference and dirty-region
// merge setting. A renderer failure (e.g. a GPU preference, which this
// core can't serve) falls back to the CPU defaults rather than aborting
// the whole session.
func printBanner(cfg config.Config, cols uint16, argv []string) {
	width := int(cols)
	if width <= 0 {
		width = 80
	}
	opts := render.Options{
		MergeDirtyRegions: cfg.MergeDirtyRegions,
		CursorVisible:     false,
		BackendPreference: resolveBackend(cfg.RendererBackend),
	}
	r, err := render.New(geom.Size{W: width, H: 1}, os.Stdout, opts)
	if err != nil {
		logx.With("component", "main").Warn("renderer backend unavailable, falling back to cpu", "err", err)
		r, err = render.New(geom.Size{W: width, H: 1}, os.Stdout, render.DefaultOptions())
		if err != nil {
			return
		}
	}
	text := "tuicore: " + strings.Join(argv, " ")
	if _, err := r.BeginFrame().WriteText(0, 0, text, geom.Style{}); err != nil {
		return
	}
	if err := r.Flush(); err != nil {
		logx.With("component", "main").Warn("banner flush failed", "err", err)
		return
	}
	fmt.Fprintln(os.Stdout)
}

// resolveBackend maps the config package's string backend preference
// onto render.Backend's enum.
func resolveBackend(pref config.BackendPreference) render.Backend {
	switch pref {
	case config.BackendGPU:
		return render.BackendGpu
	case config.BackendAuto:
		return render.BackendAuto
	default:
		return render.BackendCpu
	}
}

func configureLogging(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return
	}
	logx.SetLevel(lvl)
}

func shell() string {
	if s := os.Getenv("SHELL"); s != "" {
		return s
	}
	return "/bin/sh"
}
