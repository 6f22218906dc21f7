package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sghaida/patterns/behavioral/chain"
	"github.com/sghaida/patterns/behavioral/command"
	"github.com/sghaida/patterns/behavioral/iterator"
	"github.com/sghaida/patterns/behavioral/mediator"
	"github.com/sghaida/patterns/behavioral/memento"
	"github.com/sghaida/patterns/behavioral/observer"
	"github.com/sghaida/patterns/behavioral/state"
	"github.com/sghaida/patterns/behavioral/strategy"
	"github.com/sghaida/patterns/behavioral/visitor"
	"github.com/sghaida/patterns/creational/abstractfactory"
	"github.com/sghaida/patterns/creational/builder"
	"github.com/sghaida/patterns/creational/factory"
	"github.com/sghaida/patterns/creational/factorymethod"
	"github.com/sghaida/patterns/creational/prototype"
	"github.com/sghaida/patterns/creational/singleton"
	"github.com/sghaida/patterns/internal/catalog"
	"github.com/sghaida/patterns/structural/adapter"
	"github.com/sghaida/patterns/structural/bridge"
	"github.com/sghaida/patterns/structural/composite"
	"github.com/sghaida/patterns/structural/decorator"
	"github.com/sghaida/patterns/structural/facade"
	"github.com/sghaida/patterns/structural/proxy"
)

// plain lifts a writer-only demo into a catalog.DemoFunc.
func plain(demo func(io.Writer) error) catalog.DemoFunc {
	return func(_ context.Context, w io.Writer) error { return demo(w) }
}

func buildRegistry(a *app) *catalog.MapRegistry {
	return catalog.NewMapRegistry().
		// behavioral
		Provide(catalog.Pattern{Name: "chain", Category: catalog.Behavioral,
			Summary: "Passes a request along a chain of handlers until one accepts it.",
			Run:     plain(chain.Demo)}).
		Provide(catalog.Pattern{Name: "command", Category: catalog.Behavioral,
			Summary: "Wraps a request in an object so an invoker can run it without knowing the receiver.",
			Run:     plain(command.Demo)}).
		Provide(catalog.Pattern{Name: "iterator", Category: catalog.Behavioral,
			Summary: "Walks a collection sequentially without exposing its representation.",
			Run:     plain(iterator.Demo)}).
		Provide(catalog.Pattern{Name: "mediator", Category: catalog.Behavioral,
			Summary: "Routes messages between users through a chat room instead of direct references.",
			Run:     plain(mediator.Demo)}).
		Provide(catalog.Pattern{Name: "memento", Category: catalog.Behavioral,
			Summary: "Captures an editor's state so it can be restored later.",
			Run:     plain(memento.Demo)}).
		Provide(catalog.Pattern{Name: "observer", Category: catalog.Behavioral,
			Summary: "Notifies registered traders whenever the stock price changes.",
			Run:     plain(observer.Demo)}).
		Provide(catalog.Pattern{Name: "state", Category: catalog.Behavioral,
			Summary: "Changes an order's behavior as its state object changes.",
			Run:     plain(state.Demo)}).
		Provide(catalog.Pattern{Name: "strategy", Category: catalog.Behavioral,
			Summary: "Swaps payment algorithms at runtime behind one interface.",
			Run:     plain(strategy.Demo)}).
		Provide(catalog.Pattern{Name: "visitor", Category: catalog.Behavioral,
			Summary: "Adds export operations to document elements without changing them.",
			Run:     plain(visitor.Demo)}).
		// creational
		Provide(catalog.Pattern{Name: "abstractfactory", Category: catalog.Creational,
			Summary: "Creates families of related UI widgets for one platform.",
			Run:     plain(abstractfactory.Demo)}).
		Provide(catalog.Pattern{Name: "builder", Category: catalog.Creational,
			Summary: "Assembles a car step by step and validates it on Build.",
			Run:     func(_ context.Context, w io.Writer) error { return builder.Demo(w) }}).
		Provide(catalog.Pattern{Name: "factorymethod", Category: catalog.Creational,
			Summary: "Lets a factory decide which logger to create: file or database.",
			Run:     a.factoryMethodDemo}).
		Provide(catalog.Pattern{Name: "factory", Category: catalog.Creational,
			Summary: "Creates a text, XML or JSON log file from a type value.",
			Run:     a.factoryDemo}).
		Provide(catalog.Pattern{Name: "prototype", Category: catalog.Creational,
			Summary: "Hands out clones of stored resumes so edits never touch the originals.",
			Run:     a.prototypeDemo}).
		Provide(catalog.Pattern{Name: "singleton", Category: catalog.Creational,
			Summary: "Keeps exactly one lazily created connection per process.",
			Run:     plain(singleton.Demo)}).
		// structural
		Provide(catalog.Pattern{Name: "adapter", Category: catalog.Structural,
			Summary: "Exposes a legacy calculator through a new calculator interface.",
			Run:     plain(adapter.Demo)}).
		Provide(catalog.Pattern{Name: "bridge", Category: catalog.Structural,
			Summary: "Separates shapes from the renderers that draw them.",
			Run:     plain(bridge.Demo)}).
		Provide(catalog.Pattern{Name: "composite", Category: catalog.Structural,
			Summary: "Treats files and folders uniformly in a tree.",
			Run:     plain(composite.Demo)}).
		Provide(catalog.Pattern{Name: "decorator", Category: catalog.Structural,
			Summary: "Adds a red border to any shape by wrapping it.",
			Run:     plain(decorator.Demo)}).
		Provide(catalog.Pattern{Name: "facade", Category: catalog.Structural,
			Summary: "Converts a video with one call over three subsystems.",
			Run:     plain(facade.Demo)}).
		Provide(catalog.Pattern{Name: "proxy", Category: catalog.Structural,
			Summary: "Controls access to a lazily created real subject.",
			Run:     plain(proxy.Demo)})
}

func (a *app) factoryMethodDemo(ctx context.Context, w io.Writer) error {
	t, err := factorymethod.ParseLoggerType(a.cfg.LoggerType)
	if err != nil {
		return err
	}
	f := factorymethod.Factory{Out: w}
	if t == factorymethod.Database {
		if f.DB, err = a.database(ctx); err != nil {
			return err
		}
	}
	return factorymethod.Demo(ctx, f, t)
}

func (a *app) factoryDemo(_ context.Context, w io.Writer) error {
	t, err := factory.ParseLogType(a.cfg.LogFileType)
	if err != nil {
		return err
	}
	return factory.Demo(w, t)
}

func (a *app) prototypeDemo(_ context.Context, w io.Writer) error {
	if a.cfg.ResumeSeedFile == "" {
		return prototype.Demo(w, nil)
	}
	f, err := os.Open(a.cfg.ResumeSeedFile)
	if err != nil {
		return fmt.Errorf("open resume seeds: %w", err)
	}
	defer f.Close()

	repo, err := prototype.LoadResumeRepository(f)
	if err != nil {
		return err
	}
	return prototype.Demo(w, repo)
}
