package main

import (
	"errors"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/GasparKral/WinR/internal/event"
	"github.com/GasparKral/WinR/internal/layoutfile"
	"github.com/GasparKral/WinR/internal/preview"
	"github.com/GasparKral/WinR/internal/watch"
)

func newPreviewCmd(a *app) *cobra.Command {
	var live bool

	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Draw component bounds in the terminal until a key is pressed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("preview needs a terminal on stdout")
			}
			set, err := a.load(args[0])
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()

			if live {
				w, err := watch.New(args[0], func(p string) {
					_ = screen.PostEvent(tcell.NewEventInterrupt(p)) // best-effort; queue may be full
				}, watch.WithLogger(a.logger))
				if err != nil {
					return err
				}
				defer w.Close()
			}

			return a.preview(screen, args[0], set)
		},
	}
	cmd.Flags().BoolVar(&live, "live", false, "redraw when the file changes")
	return cmd
}

// preview runs the draw loop on screen until a key is pressed.
func (a *app) preview(screen tcell.Screen, path string, set *layoutfile.Set) error {
	dirty := true
	marker := event.NewAnchor(event.ListenerFunc(func(event.Kind, event.ID) {
		dirty = true
	}))
	defer marker.Release()
	for _, k := range append(event.ComponentKinds(), event.ComponentAdded, event.ComponentRemoved) {
		if err := set.Registry().Subscribe(k, marker.Handle()); err != nil {
			return err
		}
	}

	for {
		if dirty {
			drawSet(screen, set)
			dirty = false
		}

		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			dirty = true
		case *tcell.EventInterrupt:
			doc, err := layoutfile.Load(path)
			if err != nil {
				a.logger.Error("reload failed", "path", path, "err", err)
				continue
			}
			res := set.Apply(doc)
			a.logger.Debug("reloaded", "path", ev.Data(), "added", len(res.Added), "removed", len(res.Removed), "changed", len(res.Changed))
		}
	}
}

func drawSet(screen tcell.Screen, set *layoutfile.Set) {
	preview.Draw(screen, set.Components())
	label := tcell.StyleDefault.Bold(true)
	for _, name := range set.Names() {
		b, _ := set.Get(name)
		if b.Visible() {
			preview.Label(screen, b.ResolveBounds(), name, label)
		}
	}
	screen.Show()
}
