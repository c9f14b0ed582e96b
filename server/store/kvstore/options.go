package kvstore

import (
	"github.com/mattermost/mattermost/server/public/pluginapi"
	"github.com/pkg/errors"
)

// key builds the namespaced KV key for an option name.
// Format: "{prefix}{name}" -> raw option bytes
func (kv Client) key(name string) string {
	return kv.prefix + name
}

// GetOption retrieves the raw stored bytes for an option.
// Returns nil bytes if the option has never been set (not an error condition).
//
// Parameters:
//   - name: The option name to look up
//
// Returns:
//   - The stored bytes if found, nil otherwise
//   - Error if the KV operation fails
func (kv Client) GetOption(name string) ([]byte, error) {
	var data []byte
	if err := kv.client.KV.Get(kv.key(name), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to read option %s", name)
	}
	return data, nil
}

// SetOption stores an option value, creating the option if it does not
// exist and overwriting it if it does.
//
// Parameters:
//   - name: The option name
//   - data: The serialized option value
//
// Returns an error if the KV operation fails or the server declines the write.
func (kv Client) SetOption(name string, data []byte) error {
	written, err := kv.client.KV.Set(kv.key(name), data)
	if err != nil {
		return errors.Wrapf(err, "failed to set option %s", name)
	}
	if !written {
		return errors.Errorf("option %s was not written", name)
	}
	return nil
}

// SetOptionIfAbsent stores an option value only when no value exists for the
// name yet. The insert is atomic: a compare-and-set against a nil old value,
// so two concurrent callers cannot both create the same option.
//
// Parameters:
//   - name: The option name
//   - data: The serialized option value
//
// Returns:
//   - true if the option was created, false if it already existed
//   - Error if the KV operation fails
func (kv Client) SetOptionIfAbsent(name string, data []byte) (bool, error) {
	inserted, err := kv.client.KV.Set(kv.key(name), data, pluginapi.SetAtomic(nil))
	if err != nil {
		return false, errors.Wrapf(err, "failed to create option %s", name)
	}
	return inserted, nil
}

// DeleteOption removes an option from the KV store. Deleting an option that
// does not exist succeeds; the platform delete is idempotent.
//
// Parameters:
//   - name: The option name to remove
//
// Returns an error if the KV operation fails.
func (kv Client) DeleteOption(name string) error {
	if err := kv.client.KV.Delete(kv.key(name)); err != nil {
		return errors.Wrapf(err, "failed to delete option %s", name)
	}
	return nil
}
