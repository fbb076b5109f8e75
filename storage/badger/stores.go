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


package badger

// Stores bundles the badger implementations over one backend.
type Stores struct {
	Backend   *Backend
	Persons   *PersonRepository
	Companies *CompanyRepository
	Vectors   *VectorStore
}

// Open opens (or creates) a database at path and builds every store on it.
func Open(path string) (*Stores, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return newStores(backend)
}

// NewMemoryStores creates in-memory stores for testing.
// Caller must call Close when done.
func NewMemoryStores() (*Stores, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, err
	}
	return newStores(backend)
}

func newStores(backend *Backend) (*Stores, error) {
	persons, err := NewPersonRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	companies, err := NewCompanyRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return &Stores{
		Backend:   backend,
		Persons:   persons,
		Companies: companies,
		Vectors:   NewVectorStore(backend),
	}, nil
}

// Close closes the repositories and the backend.
func (s *Stores) Close() error {
	s.Persons.Close()
	s.Companies.Close()
	return s.Backend.Close()
}
