// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package storage defines the persistence contracts of Prospector.
//
// Three interfaces decouple the pipeline from its backends:
//
//   - PersonRepository: person records, partial updates and artifact status
//   - CompanyRepository: companies resolved from LinkedIn work history
//   - VectorStore: namespaced embeddings with similarity queries
//
// Implementations live in sub-packages:
//
//   - storage/badger: embedded key-value store for local runs and tests
//   - storage/postgres: gorm on PostgreSQL, with pgvector for embeddings
//   - storage/pinecone: Pinecone data plane for embeddings
//
// Selection is expressed with Filter. Every backend returns persons ordered
// by ID so limit/offset paging over an unchanging set visits each row once.
//
// # Thread Safety
//
// All implementations must be safe for concurrent use from multiple goroutines.
package storage
