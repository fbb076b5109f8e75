// Package embedding turns text fields into vectors and writes them to a
// namespace-scoped vector store.
//
// Three write modes are provided. UpsertItems embeds every ASCII item of a
// list and writes each one under the owner's id. UpsertAverage embeds a whole
// list and writes the element-wise mean. UpsertBios writes one vector per
// X/Twitter bio under a synthetic "<username>-bio" id.
//
// Completion flags are not touched here. Callers set them after a write
// returns without error, so a crash in between only causes a re-upsert.
package embedding
