// Package orchestrator runs the generation pipeline: descriptor loading and
// validation, artifact writes, then locale merges. Steps are best effort; a
// failing artifact is recorded and logged while its siblings still run.
package orchestrator
