package options

import (
	"encoding/json"

	"github.com/mattermost/mattermost-plugin-option-bridge/server/store/kvstore"
)

// PlatformBindings builds the default binding set backed by the plugin KV
// store. Values are stored as JSON, so any JSON-serializable value round-trips;
// a stored object comes back as map[string]any and numbers come back as
// float64, following encoding/json's generic decoding.
//
// Bindings speak boolean, not error: store failures are logged and mapped to
// the operation's "not performed" result. That keeps the bridge contract
// uniform across platform-backed and caller-supplied bindings.
func PlatformBindings(store kvstore.KVStore, log Logger) Bindings {
	return Bindings{
		Read: func(name string, fallback any) any {
			data, err := store.GetOption(name)
			if err != nil {
				log.Warn("failed to read option", "name", name, "error", err.Error())
				return fallback
			}
			if data == nil {
				return fallback
			}
			var value any
			if err := json.Unmarshal(data, &value); err != nil {
				log.Warn("stored option is not valid JSON", "name", name, "error", err.Error())
				return fallback
			}
			return value
		},

		Create: func(name string, value any) bool {
			data, err := json.Marshal(value)
			if err != nil {
				log.Warn("failed to encode option value", "name", name, "error", err.Error())
				return false
			}
			created, err := store.SetOptionIfAbsent(name, data)
			if err != nil {
				log.Warn("failed to create option", "name", name, "error", err.Error())
				return false
			}
			return created
		},

		Update: func(name string, value any) bool {
			data, err := json.Marshal(value)
			if err != nil {
				log.Warn("failed to encode option value", "name", name, "error", err.Error())
				return false
			}
			if err := store.SetOption(name, data); err != nil {
				log.Warn("failed to update option", "name", name, "error", err.Error())
				return false
			}
			return true
		},

		Delete: func(name string) bool {
			if err := store.DeleteOption(name); err != nil {
				log.Warn("failed to delete option", "name", name, "error", err.Error())
				return false
			}
			return true
		},
	}
}
