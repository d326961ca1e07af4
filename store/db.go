package store

// KV is a string-keyed, string-valued store scoped to one namespace.
type KV interface {
	// Get returns the value stored under key. ok is false if the key is
	// absent.
	Get(key string) (value string, ok bool, err error)
	// Set stores value under key, overwriting any previous value
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error
	Delete(key string) error
}

// Namespaces created by NewClient.
const (
	NamespaceTimer = "timer"
	NamespaceAuth  = "auth"
)
