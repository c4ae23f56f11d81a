// Package workflow runs the photostrip pipeline for one composite.
//
// Runner executes eight stages in order: validate, unify, layout, captions,
// render, crop, overlay and concatenate. Every stage logs "stage started" and
// "stage completed" with its name and duration, and the first failing stage
// logs "stage failed" and ends the run. Nothing is written to disk until the
// final stage, so a failed run leaves no partial output.
package workflow
