// Package heatpath finds the cheapest route across a grid of cell costs for
// a walker that can never reverse and must keep every straight run between a
// minimum and a maximum number of steps.
//
// What is in the box:
//
//	gridgraph/ — immutable CostGrid, digit-map parser, content fingerprint
//	dijkstra/  — run-length constrained Dijkstra over (cell, heading, run) states,
//	             path reconstruction and replay, OpenTelemetry counters
//	cache/     — LRU memo of answers keyed by grid fingerprint and policy, msgpack snapshots
//	config/    — viper runtime settings and TOML policy files
//	solver/    — answers several named policies over one shared grid concurrently
//	cmd/heatpath — the command-line front end
//
// Quick ASCII example, policy 1..3 over a 2×2 grid:
//
//	1 9
//	1 1
//
// Down then Right costs 1 + 1 = 2; Right then Down costs 9 + 1 = 10.
//
//	go install github.com/katalvlaran/heatpath/cmd/heatpath@latest
//	heatpath solve grid.txt
package heatpath
