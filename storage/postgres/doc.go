// Package postgres implements the storage contracts on PostgreSQL through
// gorm. Person and company rows use text[] and jsonb columns; vectors live in
// a pgvector table keyed by (namespace, id).
//
// Schema management is outside this package. AutoMigrate is offered as a
// developer convenience behind WithAutoMigrate and is not a migration system.
package postgres
