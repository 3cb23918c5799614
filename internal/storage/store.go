package storage

import "context"

// Collection keys. Session state shares the same namespace under KeyToken
// and KeyUser; absence of a key is equivalent to an empty collection or an
// anonymous session.
const (
	CollectionUsers   = "users"
	CollectionJobs    = "jobs"
	CollectionResumes = "resumes"
	CollectionMatches = "matches"

	KeyToken = "token"
	KeyUser  = "user"
)

// Store is a snapshot-level key-value contract: values are read and written
// whole. There is no partial-record update primitive and no isolation across
// concurrent callers; two interleaved read-modify-write cycles lose the
// earlier write. The store is designed for a single active writer.
type Store interface {
	// Read returns the stored snapshot, or nil when the key is absent.
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
