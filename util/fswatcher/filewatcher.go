package fswatcher

import (
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

type Event struct {
	Op   Op
	Name string
}

//----------

const (
	Attrib Op = 1 << iota
	Create
	Modify // write, truncate
	Remove
	Rename

	AllOps Op = Attrib | Create | Modify | Remove | Rename
)

type Op uint16

func (op Op) HasAny(op2 Op) bool { return op&op2 != 0 }
func (op *Op) Add(op2 Op)        { *op |= op2 }

func (op Op) String() string {
	names := []string{"attrib", "create", "modify", "remove", "rename"}
	u := []string{}
	for i, n := range names {
		if op.HasAny(1 << i) {
			u = append(u, n)
		}
	}
	return strings.Join(u, "|")
}

//----------

// Watches one file. The parent directory is watched so the file can be replaced (ex: editors saving with a rename) without losing the watch.
type FileWatcher struct {
	w      *fsnotify.Watcher
	name   string
	events chan any
}

func NewFileWatcher(name string) (*FileWatcher, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, errors.Wrap(err, "abs")
	}
	w0, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "fsnotify")
	}
	if err := w0.Add(filepath.Dir(abs)); err != nil {
		_ = w0.Close()
		return nil, errors.Wrap(err, "watch dir")
	}
	fw := &FileWatcher{w: w0, name: abs, events: make(chan any, 16)}
	go fw.eventLoop()
	return fw, nil
}

func (fw *FileWatcher) Close() error {
	return fw.w.Close()
}

// Sends *Event and error values. Closed after Close.
func (fw *FileWatcher) Events() <-chan any {
	return fw.events
}

func (fw *FileWatcher) eventLoop() {
	defer close(fw.events)
	for {
		select {
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			fw.events <- err
		case ev, ok := <-fw.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != fw.name {
				continue
			}
			if op := translateOp(ev.Op); op != 0 {
				fw.events <- &Event{Op: op, Name: fw.name}
			}
		}
	}
}

func translateOp(u fsnotify.Op) Op {
	var op Op
	if u.Has(fsnotify.Create) {
		op.Add(Create)
	}
	if u.Has(fsnotify.Write) {
		op.Add(Modify)
	}
	if u.Has(fsnotify.Remove) {
		op.Add(Remove)
	}
	if u.Has(fsnotify.Rename) {
		op.Add(Rename)
	}
	if u.Has(fsnotify.Chmod) {
		op.Add(Attrib)
	}
	return op
}
