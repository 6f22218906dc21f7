// Package patterns is a catalog of the classic design patterns written as small,
// runnable Go packages.
//
// Each pattern lives in its own package under one of three groups:
//
//   - behavioral: chain, command, iterator, mediator, memento, observer, state,
//     strategy, visitor
//   - creational: abstractfactory, builder, factorymethod, factory, prototype,
//     singleton
//   - structural: adapter, bridge, composite, decorator, facade, proxy
//
// Every package exposes a Demo that writes its output to an io.Writer, so the
// demos double as Example tests and can be run side by side.
//
// Package patterns See subpackages:
//   - internal/catalog: pattern registry and concurrent demo runner
//   - internal/config: defaults, TOML file and PATTERNS_* environment settings
//   - cmd/patterns: CLI to list, show and run the demos
package patterns
