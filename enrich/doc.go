// Package enrich assembles Person records from provider payloads and persists
// them.
//
// CandidateIngester starts from a LinkedIn profile URL, derives the candidate
// features, stores the row and writes its vectors. GitHubIngester starts from
// a GitHub login and fans out to every linked provider concurrently before
// merging the answers into one row.
//
// Merges are last-write-wins per field. Inserting an identifier that is
// already stored is not an error; the existing row is used instead.
package enrich
