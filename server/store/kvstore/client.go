package kvstore

import (
	"github.com/mattermost/mattermost/server/public/pluginapi"
)

// Client exposes KVStore operations through a well-defined interface.
// This provides testability and stability by controlling how data is stored
// with specific keys and formats.
type Client struct {
	client *pluginapi.Client
	prefix string
}

// NewKVStore creates a new KVStore client wrapping the pluginapi.Client.
// Every option name is stored under the given key prefix so bridge options
// never collide with other data the plugin keeps in the KV store.
func NewKVStore(client *pluginapi.Client, prefix string) KVStore {
	return Client{
		client: client,
		prefix: prefix,
	}
}
