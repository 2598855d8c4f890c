// Package localstorage provides a file backed fabrica.Storage implementation
// on top of BoltDB. Entities live in a bucket per entity type and receive
// bucket sequence numbers as identifiers.
package localstorage

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"reflect"
	"strconv"

	"github.com/boltdb/bolt"

	"github.com/fabrica-go/fabrica"
	"github.com/fabrica-go/fabrica/extid"
	"github.com/fabrica-go/fabrica/reflects"
)

var _ fabrica.Storage = &Local{}

// New opens (or creates) the BoltDB file at the given path.
func New(path string) (*Local, error) {
	db, err := bolt.Open(path, 0600, nil)
	return &Local{db: db}, err
}

// Local is a BoltDB backed storage.
type Local struct {
	db *bolt.DB
}

// Close closes the database and releases the file lock.
func (s *Local) Close() error {
	return s.db.Close()
}

// Create stores the pointed entity in its type's bucket and links the bucket
// sequence number into the entity's ext:"ID" field.
func (s *Local) Create(ctx context.Context, ptr fabrica.Entity) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if id, ok := extid.Lookup(ptr); ok {
		return fmt.Errorf(`entity already has an ID: %v`, id)
	}

	_, field, ok := extid.LookupStructField(ptr)
	if !ok {
		return fabrica.ErrIDRequired
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketNameFor(ptr))
		if err != nil {
			return err
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}

		var id interface{}
		switch field.Kind() {
		case reflect.String:
			id = strconv.FormatUint(seq, 10)
		default:
			id = int64(seq)
		}

		if err := extid.Set(ptr, id); err != nil {
			return err
		}

		value, err := encode(ptr)
		if err != nil {
			return err
		}

		return bucket.Put(keyOf(seq), value)
	})
}

// FindByID decodes the stored entity into the received pointer
// and reports whether the id was present at all.
func (s *Local) FindByID(ctx context.Context, ptr fabrica.Entity, id interface{}) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	key, ok := idToKey(id)
	if !ok {
		return false, nil
	}

	found := false
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketNameFor(ptr))
		if bucket == nil {
			return nil
		}

		value := bucket.Get(key)
		if value == nil {
			return nil
		}

		found = true
		return decode(value, ptr)
	})

	return found, err
}

// FindAll returns every stored entity of T's type.
func (s *Local) FindAll(ctx context.Context, T fabrica.Entity) ([]fabrica.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var entities []fabrica.Entity
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketNameFor(T))
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(_, value []byte) error {
			ptr := reflects.New(T)
			if err := decode(value, ptr); err != nil {
				return err
			}
			entities = append(entities, reflects.BaseValueOf(ptr).Interface())
			return nil
		})
	})

	return entities, err
}

// Update replaces the stored entity that shares the pointed entity's identifier.
func (s *Local) Update(ctx context.Context, ptr fabrica.Entity) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	id, ok := extid.Lookup(ptr)
	if !ok {
		return fabrica.ErrIDRequired
	}

	key, ok := idToKey(id)
	if !ok {
		return fabrica.ErrNotFound
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketNameFor(ptr))
		if bucket == nil || bucket.Get(key) == nil {
			return fabrica.ErrNotFound
		}

		value, err := encode(ptr)
		if err != nil {
			return err
		}

		return bucket.Put(key, value)
	})
}

// DeleteByID removes the entity of T's type stored under the id.
func (s *Local) DeleteByID(ctx context.Context, T fabrica.Entity, id interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key, ok := idToKey(id)
	if !ok {
		return fabrica.ErrNotFound
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketNameFor(T))
		if bucket == nil || bucket.Get(key) == nil {
			return fabrica.ErrNotFound
		}

		return bucket.Delete(key)
	})
}

// DeleteAll drops the whole bucket of T's type.
func (s *Local) DeleteAll(ctx context.Context, T fabrica.Entity) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		name := bucketNameFor(T)
		if tx.Bucket(name) == nil {
			return nil
		}
		return tx.DeleteBucket(name)
	})
}

func bucketNameFor(T fabrica.Entity) []byte {
	return []byte(reflects.FullyQualifiedName(T))
}

func encode(ptr fabrica.Entity) ([]byte, error) {
	var buffer bytes.Buffer
	if err := gob.NewEncoder(&buffer).Encode(reflects.BaseValueOf(ptr).Interface()); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func decode(value []byte, ptr fabrica.Entity) error {
	return gob.NewDecoder(bytes.NewReader(value)).Decode(ptr)
}

func keyOf(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

// idToKey maps an external id back to the bucket key it was stored under.
// Unparsable ids can't name a stored entity, which is reported as not ok.
func idToKey(id interface{}) ([]byte, bool) {
	switch rv := reflect.ValueOf(id); rv.Kind() {
	case reflect.String:
		seq, err := strconv.ParseUint(rv.String(), 10, 64)
		if err != nil {
			return nil, false
		}
		return keyOf(seq), true

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Int() < 1 {
			return nil, false
		}
		return keyOf(uint64(rv.Int())), true

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return keyOf(rv.Uint()), true

	default:
		return nil, false
	}
}
