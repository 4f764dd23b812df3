package ports

// KeyValueStore is durable storage for named JSON documents.
// Get reports found=false for a key that was never set.
type KeyValueStore interface {
	Get(key string) (value []byte, found bool, err error)
	Set(key string, value []byte) error
	Close() error
}
