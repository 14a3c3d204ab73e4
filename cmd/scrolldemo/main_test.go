package main

import (
	"testing"

	"github.com/editsurface/scrollbar/ui"
	"github.com/editsurface/scrollbar/util/uiutil/widget"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func TestFlagsDefaults(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatal(err)
	}
	fs := cmd.Flags()
	w, _ := fs.GetInt("width")
	h, _ := fs.GetInt("height")
	watch, _ := fs.GetBool("watch")
	if w != widget.DefaultVScrollBarWidth || h != widget.DefaultHScrollBarHeight || !watch {
		t.Fatal(w, h, watch)
	}
}

func TestFlagsToOptions(t *testing.T) {
	cfg := &config{}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	bindFlags(fs, cfg)
	args := []string{"--width=11", "--height=9", "--font-size=16", "--fps=20", "--watch=false"}
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	if cfg.watch || cfg.logLevel != "info" {
		t.Fatal(cfg.watch, cfg.logLevel)
	}
	opt := cfg.uiOptions()
	want := ui.Options{VScrollBarWidth: 11, HScrollBarHeight: 9, FontSize: 16, FrameRate: 20}
	if *opt != want {
		t.Fatal(*opt)
	}
}

func TestArgsRequired(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(nopWriter{})
	cmd.SetErr(nopWriter{})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expecting error")
	}
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger("debug")
	if err != nil {
		t.Fatal(err)
	}
	if log.GetLevel() != logrus.DebugLevel {
		t.Fatal(log.GetLevel())
	}
	if _, err := newLogger("loud"); err == nil {
		t.Fatal("expecting error")
	}
}

type nopWriter struct{}

func (nopWriter) Write(b []byte) (int, error) { return len(b), nil }
