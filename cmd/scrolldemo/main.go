// Shows a text file in a window with custom drawn scroll bars.
package main

import (
	"os"
	"path/filepath"

	"github.com/editsurface/scrollbar/driver"
	"github.com/editsurface/scrollbar/ui"
	"github.com/editsurface/scrollbar/util/fswatcher"
	"github.com/editsurface/scrollbar/util/uiutil/widget"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type config struct {
	vbarWidth  int
	hbarHeight int
	fontSize   float64
	fps        int
	watch      bool
	logLevel   string
}

func (cfg *config) uiOptions() *ui.Options {
	return &ui.Options{
		VScrollBarWidth:  cfg.vbarWidth,
		HScrollBarHeight: cfg.hbarHeight,
		FontSize:         cfg.fontSize,
		FrameRate:        cfg.fps,
	}
}

func newRootCmd() *cobra.Command {
	cfg := &config{}
	cmd := &cobra.Command{
		Use:   "scrolldemo [flags] <file>",
		Short: "Show a text file with custom drawn scroll bars",
		Long: `Opens an X11 window showing the file. Drag the bars, press on
the tracks, or use the wheel and the page keys to scroll.
The file is reloaded when it changes.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cfg.logLevel)
			if err != nil {
				return err
			}
			return run(cfg, args[0], log)
		},
	}
	bindFlags(cmd.Flags(), cfg)
	return cmd
}

func bindFlags(fs *pflag.FlagSet, cfg *config) {
	fs.IntVar(&cfg.vbarWidth, "width", widget.DefaultVScrollBarWidth, "vertical scroll bar width")
	fs.IntVar(&cfg.hbarHeight, "height", widget.DefaultHScrollBarHeight, "horizontal scroll bar height")
	fs.Float64Var(&cfg.fontSize, "font-size", 12, "font size")
	fs.IntVar(&cfg.fps, "fps", ui.DefaultFrameRate, "max frames per second")
	fs.BoolVar(&cfg.watch, "watch", true, "reload the file when it changes")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

func newLogger(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	log := logrus.New()
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log, nil
}

//----------

func run(cfg *config, filename string, log *logrus.Logger) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrap(err, "read file")
	}

	win, err := driver.NewWindow(&driver.Options{Width: 800, Height: 600, Log: log})
	if err != nil {
		return errors.Wrap(err, "window")
	}
	win.SetWindowName(filepath.Base(filename) + " - scrolldemo")

	u, err := ui.NewUI(win, cfg.uiOptions())
	if err != nil {
		_ = win.Close()
		return err
	}
	u.OnError = func(err error) {
		log.WithError(err).Error("ui")
	}
	u.Editor.SetText(string(b))
	logScrollEvents(u.Editor, log)

	if cfg.watch {
		fw, err := fswatcher.NewFileWatcher(filename)
		if err != nil {
			log.WithError(err).Warn("not watching file")
		} else {
			defer fw.Close()
			go reloadOnChange(fw, u, filename, log)
		}
	}

	log.WithField("file", filename).Info("window open")
	u.EventLoop()
	log.Info("window closed")
	return nil
}

func logScrollEvents(ed *ui.Editor, log logrus.FieldLogger) {
	ed.VBar.Events.Add(widget.ScrollBarScrollEventId, func(ev any) {
		log.WithField("top", ev.(*widget.ScrollEvent).Data).Debug("scroll")
	})
	ed.HBar.Events.Add(widget.ScrollBarScrollEventId, func(ev any) {
		log.WithField("left", ev.(*widget.ScrollEvent).Data).Debug("scroll")
	})
}

// Runs until the watcher is closed.
func reloadOnChange(fw *fswatcher.FileWatcher, u *ui.UI, filename string, log logrus.FieldLogger) {
	for ev := range fw.Events() {
		switch t := ev.(type) {
		case error:
			log.WithError(t).Warn("watcher")
		case *fswatcher.Event:
			if !t.Op.HasAny(fswatcher.Create | fswatcher.Modify) {
				continue
			}
			b, err := os.ReadFile(filename)
			if err != nil {
				log.WithError(err).Warn("reload")
				continue
			}
			log.WithField("file", filename).WithField("op", t.Op).Info("reload")
			u.RunOnUIThread(func() {
				u.Editor.SetText(string(b))
			})
		}
	}
}
