// Package jobs holds the resumable batch jobs of the pipeline.
//
// Every job selects the people whose completion flag or column is still
// unset, processes them with a batch.Runner and writes the flag only after
// its side effect succeeded, so a rerun picks up exactly where a crashed or
// interrupted run stopped.
package jobs
