package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/GasparKral/WinR/internal/event"
	"github.com/GasparKral/WinR/internal/layoutfile"
	"github.com/GasparKral/WinR/internal/script"
	"github.com/GasparKral/WinR/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	var scriptPath string

	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Reload a layout file on change and log the resulting events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.watch(ctx, args[0], scriptPath)
		},
	}
	cmd.Flags().StringVar(&scriptPath, "script", "", "Lua script defining on_event(kind, id)")
	return cmd
}

// watch runs the reload loop until ctx is done.
func (a *app) watch(ctx context.Context, path, scriptPath string) error {
	set, err := a.load(path)
	if err != nil {
		return err
	}
	reg := set.Registry()

	logged := event.NewAnchor(logListener(a, set))
	defer logged.Release()
	for _, k := range event.Kinds() {
		if err := reg.Subscribe(k, logged.Handle()); err != nil {
			return err
		}
	}

	if scriptPath != "" {
		l, err := script.Load(scriptPath, script.WithLogger(a.logger), script.WithRegistry(reg))
		if err != nil {
			return err
		}
		defer l.Close()

		scripted := event.NewAnchor(l)
		defer scripted.Release()
		for _, k := range event.ComponentKinds() {
			if err := reg.Subscribe(k, scripted.Handle()); err != nil {
				return err
			}
		}
	}

	changes := make(chan string, 1)
	w, err := watch.New(path, func(p string) {
		select {
		case changes <- p:
		default:
		}
	}, watch.WithLogger(a.logger))
	if err != nil {
		return err
	}
	defer w.Close()

	fmt.Fprintf(a.stdout, "watching %s (%d components)\n", w.Path(), set.Len())

	for {
		select {
		case <-ctx.Done():
			s := reg.Stats()
			a.logger.Info("stopped", "emitted", s.Emitted, "delivered", s.Delivered, "pruned", s.Pruned)
			return nil

		case <-changes:
			doc, err := layoutfile.Load(path)
			if err != nil {
				a.logger.Error("reload failed", "path", path, "err", err)
				continue
			}
			res := set.Apply(doc)
			if res.Empty() {
				continue
			}
			fmt.Fprintf(a.stdout, "reloaded: %d added, %d removed, %d changed\n",
				len(res.Added), len(res.Removed), len(res.Changed))
		}
	}
}

// logListener logs every event with the name of its source component.
func logListener(a *app, set *layoutfile.Set) event.Listener {
	return event.ListenerFunc(func(kind event.Kind, id event.ID) {
		name, _ := set.NameOf(id)
		a.logger.Info("event", "kind", kind.String(), "id", uint64(id), "component", name)
	})
}
