// Package plan computes the deterministic artifact layout for one pipeline
// run.
//
// Given an output directory, a base name, and the requested output kind it
// returns the exact set of files the run may produce or consume, each tagged
// with its lifecycle role. Planning is pure: no filesystem access, no
// side effects, and identical inputs always yield identical paths. The naming
// convention ({name}.mp4, {name}_complete.mp4, {name}.mp3) is relied upon by
// external tooling and must not drift.
package plan
