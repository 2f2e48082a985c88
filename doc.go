// Package gridastar is a terminal A* path-finding visualizer and the search
// engine behind it.
//
// What is in here?
//
//	A deterministic A* search over a square grid, plus a small interactive
//	shell that lets you draw walls and watch the frontier grow:
//		• 4-directional moves, unit cost, Manhattan heuristic
//		• Fixed neighbor order and (f, insertion) tie-breaking: same grid, same run
//		• Read-only progress hook, context cancellation, "no path" as a value
//		• Structured events (slog), Prometheus metrics and OpenTelemetry spans
//
// Packages:
//
//	gridgraph/      N×N grid of Free/Obstacle/Start/End cells, neighbors, BFS distance
//	astar/          the search engine: FindPath, Solve, Overlay of open/closed/path marks
//	observability/  Observer events, slog and Prometheus observers
//	config/         JSON configuration with defaults and merge
//	tui/            tcell front end: palette, click-to-cell layout, session loop
//	cmd/gridastar/  the binary
//
// Quick ASCII example:
//
//	S.#..
//	*.#..
//	*.#..
//	*.#..
//	****E
//
//	the path around a wall with one gap, cost 8.
//
//	go install github.com/katalvlaran/gridastar/cmd/gridastar@latest
package gridastar
