package badger

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/storage"
)

// PersonRepository implements storage.PersonRepository using BadgerDB.
//
// Persons are stored MUS-encoded under person:<id>. The LinkedIn URL and
// GitHub login each have a unique index entry pointing back at the ID.
type PersonRepository struct {
	backend *Backend
}

var _ storage.PersonRepository = (*PersonRepository)(nil)

// NewPersonRepository creates a new PersonRepository.
func NewPersonRepository(backend *Backend) (*PersonRepository, error) {
	return &PersonRepository{
		backend: backend,
	}, nil
}

// Close releases resources. PersonRepository has no resources to release.
func (r *PersonRepository) Close() error {
	return nil
}

func (r *PersonRepository) Insert(ctx context.Context, p *core.Person) error {
	if p != nil && p.ID == "" {
		p.ID = core.NewID()
	}
	if err := core.ValidatePerson(p); err != nil {
		return err
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	return r.backend.Update(func(tx *badger.Txn) error {
		if _, err := tx.Get(makePersonKey(p.ID)); err == nil {
			return fmt.Errorf("%w: person %s", storage.ErrDuplicateKey, p.ID)
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		if err := claimIndex(tx, indexKeys(p), p.ID); err != nil {
			return err
		}
		return writePerson(tx, p)
	})
}

func (r *PersonRepository) Get(ctx context.Context, id string) (*core.Person, error) {
	var p *core.Person
	err := r.backend.View(func(tx *badger.Txn) error {
		var (
			found bool
			err   error
		)
		p, found, err = readPerson(tx, id)
		if err != nil {
			return err
		}
		if !found {
			return storage.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PersonRepository) FindByLinkedInURL(ctx context.Context, url string) (*core.Person, error) {
	return r.findByIndex(ctx, makePersonLinkedInKey(url))
}

func (r *PersonRepository) FindByGitHubLogin(ctx context.Context, login string) (*core.Person, error) {
	return r.findByIndex(ctx, makePersonGitHubKey(login))
}

func (r *PersonRepository) findByIndex(ctx context.Context, key []byte) (*core.Person, error) {
	var p *core.Person
	err := r.backend.View(func(tx *badger.Txn) error {
		id, ok, err := readString(tx, key)
		if err != nil {
			return err
		}
		if !ok {
			return storage.ErrNotFound
		}
		var found bool
		p, found, err = readPerson(tx, id)
		if err != nil {
			return err
		}
		if !found {
			return storage.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PersonRepository) Select(ctx context.Context, f storage.Filter) ([]*core.Person, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	var matched []*core.Person
	err := r.backend.View(func(tx *badger.Txn) error {
		if len(f.IDs) > 0 {
			return r.selectIDs(tx, f, &matched)
		}
		return scanPrefix(tx, []byte(personPrefix), func(_, val []byte) error {
			p, err := unmarshal(core.PersonMUS, val)
			if err != nil {
				return err
			}
			if f.Match(&p) {
				matched = append(matched, &p)
			}
			return ctx.Err()
		})
	})
	if err != nil {
		return nil, err
	}
	return f.Page(matched), nil
}

// selectIDs loads the listed persons directly instead of scanning. Results
// keep ID order so paging is consistent with a scan.
func (r *PersonRepository) selectIDs(tx *badger.Txn, f storage.Filter, out *[]*core.Person) error {
	ids := append([]string(nil), f.IDs...)
	slices.Sort(ids)
	for i, id := range ids {
		if i > 0 && ids[i-1] == id {
			continue
		}
		p, found, err := readPerson(tx, id)
		if err != nil {
			return err
		}
		if found && f.Match(p) {
			*out = append(*out, p)
		}
	}
	return nil
}

func (r *PersonRepository) Update(ctx context.Context, id string, patch core.PersonPatch) error {
	if patch.IsEmpty() {
		return nil
	}
	if err := core.ValidatePatch(patch); err != nil {
		return err
	}
	return r.modify(id, func(tx *badger.Txn, p *core.Person) error {
		oldURL := p.LinkedInURL
		patch.Apply(p)
		if p.LinkedInURL == oldURL {
			return nil
		}
		if p.LinkedInURL != "" {
			if err := claimIndex(tx, [][]byte{makePersonLinkedInKey(p.LinkedInURL)}, p.ID); err != nil {
				return err
			}
		}
		if oldURL != "" {
			return tx.Delete(makePersonLinkedInKey(oldURL))
		}
		return nil
	})
}

func (r *PersonRepository) MarkDone(ctx context.Context, id string, kinds ...core.ArtifactKind) error {
	for _, k := range kinds {
		if !k.Valid() {
			return fmt.Errorf("%w: %q", core.ErrUnknownArtifact, k)
		}
	}
	return r.modify(id, func(_ *badger.Txn, p *core.Person) error {
		p.MarkDone(kinds...)
		return nil
	})
}

// modify loads a person, applies fn and writes the result back in one transaction.
func (r *PersonRepository) modify(id string, fn func(tx *badger.Txn, p *core.Person) error) error {
	return r.backend.Update(func(tx *badger.Txn) error {
		p, found, err := readPerson(tx, id)
		if err != nil {
			return err
		}
		if !found {
			return storage.ErrNotFound
		}
		if err := fn(tx, p); err != nil {
			return err
		}
		return writePerson(tx, p)
	})
}

func indexKeys(p *core.Person) [][]byte {
	var keys [][]byte
	if p.LinkedInURL != "" {
		keys = append(keys, makePersonLinkedInKey(p.LinkedInURL))
	}
	if p.GitHubLogin != "" {
		keys = append(keys, makePersonGitHubKey(p.GitHubLogin))
	}
	return keys
}

// claimIndex points every key at id, failing if one already belongs to
// another record.
func claimIndex(tx *badger.Txn, keys [][]byte, id string) error {
	for _, key := range keys {
		owner, ok, err := readString(tx, key)
		if err != nil {
			return err
		}
		if ok && owner != id {
			return fmt.Errorf("%w: identifier already owned by %s", storage.ErrDuplicateKey, owner)
		}
	}
	for _, key := range keys {
		if err := tx.Set(key, []byte(id)); err != nil {
			return err
		}
	}
	return nil
}
