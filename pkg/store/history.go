package store

import (
	"encoding/binary"

	bolt "go.etcd.io/bbolt"
	. "src.3code.sh/pkg/store/storedefs"
)

const bucketHistory = "history"

func init() {
	initDB["initialize history bucket"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketHistory))
		return err
	}
}

// NextSeq returns the sequence number the next entry will get.
func (s *dbStore) NextSeq() (int, error) {
	var seq uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		seq = tx.Bucket([]byte(bucketHistory)).Sequence() + 1
		return nil
	})
	return int(seq), err
}

// Add appends a line to the history and returns its sequence number.
func (s *dbStore) Add(text string) (int, error) {
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketHistory))
		var err error
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), []byte(text))
	})
	return int(seq), err
}

// Entries returns all entries with sequence numbers in [from, upto).
func (s *dbStore) Entries(from, upto int) ([]Entry, error) {
	var entries []Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketHistory)).Cursor()
		for k, v := c.Seek(marshalSeq(uint64(from))); k != nil && unmarshalSeq(k) < uint64(upto); k, v = c.Next() {
			entries = append(entries, Entry{Text: string(v), Seq: int(unmarshalSeq(k))})
		}
		return nil
	})
	return entries, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
