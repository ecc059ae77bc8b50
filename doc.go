// Package maxflow is a compact toolkit for computing maximum s–t flow in
// directed capacitated networks with the preflow push-relabel method
// (Goldberg–Tarjan), sharpened by the gap and current-arc heuristics.
//
// 🚀 What is maxflow?
//
//	A small, focused library that brings together:
//		• flownet/     — arena-style residual networks: arcs, mirrors, O(1) reverse access
//		• pushrelabel/ — the FIFO push-relabel solver with gap + current-arc heuristics
//		• dimacs/      — DIMACS max-flow problem decoding and solution encoding
//		• logger/      — zap-based structured logging, configured through viper
//		• cmd/maxflow  — a command-line driver: DIMACS in, flow value out
//
// ✨ Why choose maxflow?
//
//   - Predictable performance – the gap heuristic prunes dead labels in bulk,
//     the current-arc cursor never rescans arcs ruled out at the current height
//   - Index-based arenas – no maps on the hot path, no hidden allocation
//   - Minimal API – build a network, ask for the flow, read the arcs
//
// Quick ASCII example:
//
//	    ┌──10──▶ 1 ──10──┐
//	    0                ▼
//	    └──10──▶ 2 ──10──▶ 3      max flow 0→3 = 20
//
// Dive into the package docs for full examples.
//
//	go get github.com/katalvlaran/maxflow
package maxflow
