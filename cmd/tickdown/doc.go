// Package main hosts the tickdown CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into render
// sessions, history queries, and configuration scaffolding. It centralizes
// configuration resolution and logging setup so subcommands stay declarative;
// the heavy lifting lives in the internal packages.
package main
