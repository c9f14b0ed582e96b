package kvstore

//go:generate mockgen -destination=mocks/kvstore_mock.go -package=mocks github.com/mattermost/mattermost-plugin-option-bridge/server/store/kvstore KVStore

// KVStore exposes the platform operations the option bridge is built on.
// Each method maps to a single KV call against the Mattermost server,
// keeping option storage behind a seam that tests can substitute.
type KVStore interface {
	// GetOption returns the raw stored bytes for an option, or nil if the
	// option has never been set. An absent option is not an error condition.
	GetOption(name string) ([]byte, error)

	// SetOption stores an option value, creating or overwriting it.
	SetOption(name string, data []byte) error

	// SetOptionIfAbsent stores an option value only if no value exists yet.
	// Returns false (with a nil error) when the option is already present.
	SetOptionIfAbsent(name string, data []byte) (bool, error)

	// DeleteOption removes an option. Deleting an absent option is a no-op.
	DeleteOption(name string) error
}
