package badger

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/mus-format/mus-go"
	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/storage"
)

// marshal serializes v with its generated MUS serializer.
func marshal[T any](ser mus.Serializer[T], v T) []byte {
	buf := make([]byte, ser.Size(v))
	ser.Marshal(v, buf)
	return buf
}

// unmarshal deserializes a value written by marshal.
func unmarshal[T any](ser mus.Serializer[T], data []byte) (T, error) {
	v, _, err := ser.Unmarshal(data)
	if err != nil {
		return v, fmt.Errorf("%w: %v", storage.ErrSerializationFailed, err)
	}
	return v, nil
}

// read loads key and decodes it with ser. found is false when the key does
// not exist.
func read[T any](tx *badger.Txn, key []byte, ser mus.Serializer[T]) (v T, found bool, err error) {
	item, err := tx.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return v, false, nil
	}
	if err != nil {
		return v, false, err
	}
	err = item.Value(func(val []byte) error {
		v, err = unmarshal(ser, val)
		return err
	})
	return v, err == nil, err
}

func write[T any](tx *badger.Txn, key []byte, ser mus.Serializer[T], v T) error {
	return tx.Set(key, marshal(ser, v))
}

func readPerson(tx *badger.Txn, id string) (*core.Person, bool, error) {
	p, found, err := read(tx, makePersonKey(id), core.PersonMUS)
	if !found || err != nil {
		return nil, found, err
	}
	return &p, true, nil
}

func writePerson(tx *badger.Txn, p *core.Person) error {
	return write(tx, makePersonKey(p.ID), core.PersonMUS, *p)
}

func readCompany(tx *badger.Txn, id string) (*core.Company, bool, error) {
	c, found, err := read(tx, makeCompanyKey(id), core.CompanyMUS)
	if !found || err != nil {
		return nil, found, err
	}
	return &c, true, nil
}

func writeCompany(tx *badger.Txn, c *core.Company) error {
	return write(tx, makeCompanyKey(c.ID), core.CompanyMUS, *c)
}

// toRecord converts v to its stored form.
func toRecord(v core.Vector) (core.VectorRecord, error) {
	rec := core.VectorRecord{ID: v.ID, Values: v.Values}
	if v.Metadata != nil {
		meta, err := json.Marshal(v.Metadata)
		if err != nil {
			return rec, fmt.Errorf("%w: %v", storage.ErrSerializationFailed, err)
		}
		rec.Metadata = meta
	}
	return rec, nil
}

// fromRecord is the inverse of toRecord. Empty metadata decodes to nil.
func fromRecord(rec core.VectorRecord) (core.Vector, error) {
	v := core.Vector{ID: rec.ID, Values: rec.Values}
	if len(rec.Metadata) > 0 {
		if err := json.Unmarshal(rec.Metadata, &v.Metadata); err != nil {
			return v, fmt.Errorf("%w: %v", storage.ErrSerializationFailed, err)
		}
	}
	return v, nil
}

// readString loads an index entry.
func readString(tx *badger.Txn, key []byte) (string, bool, error) {
	item, err := tx.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return "", false, err
	}
	return string(val), true, nil
}

// scanPrefix calls fn with the value of every key under prefix, in key order.
func scanPrefix(tx *badger.Txn, prefix []byte, fn func(key, val []byte) error) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	iter := tx.NewIterator(opts)
	defer iter.Close()

	for iter.Rewind(); iter.Valid(); iter.Next() {
		item := iter.Item()
		key := item.KeyCopy(nil)
		if err := item.Value(func(val []byte) error {
			return fn(key, val)
		}); err != nil {
			return err
		}
	}
	return nil
}
