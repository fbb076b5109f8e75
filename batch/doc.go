// Package batch runs resumable jobs in the SELECT, CHUNK, PROCESS, DELAY
// shape.
//
// A Runner takes a snapshot of the items that still need work, splits it into
// fixed-size chunks and processes every item of a chunk concurrently on an
// ants pool sized to the chunk. Chunks run one after another with a pause in
// between. A failing item is logged and counted; it never stops the run.
//
// Because selection filters on completion flags, a rerun after a crash
// selects exactly the items whose flags were not yet written.
package batch
