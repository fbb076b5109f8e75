package postgres

// Stores bundles the postgres implementations over one connection pool.
type Stores struct {
	DB        *DB
	Persons   *PersonRepository
	Companies *CompanyRepository
	Vectors   *VectorStore
}

// OpenStores connects to dsn and builds every store on the shared pool.
func OpenStores(dsn string, opts ...Option) (*Stores, error) {
	db, err := Open(dsn, opts...)
	if err != nil {
		return nil, err
	}
	return &Stores{
		DB:        db,
		Persons:   NewPersonRepository(db),
		Companies: NewCompanyRepository(db),
		Vectors:   NewVectorStore(db),
	}, nil
}

// Close releases the connection pool.
func (s *Stores) Close() error {
	return s.DB.Close()
}
