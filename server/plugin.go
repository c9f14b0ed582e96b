package main

import (
	"net/http"
	"sync"

	"github.com/mattermost/mattermost/server/public/model"
	"github.com/mattermost/mattermost/server/public/plugin"
	"github.com/mattermost/mattermost/server/public/pluginapi"

	"github.com/mattermost/mattermost-plugin-option-bridge/server/options"
	"github.com/mattermost/mattermost-plugin-option-bridge/server/store/kvstore"
)

// Plugin implements the interface expected by the Mattermost server to communicate between the server and plugin processes.
type Plugin struct {
	plugin.MattermostPlugin

	// client is the Mattermost server API client.
	client *pluginapi.Client

	// bridge is the option façade every surface of the plugin goes through.
	bridge *options.Bridge

	// handler serves the options REST API.
	handler http.Handler

	// configurationLock synchronizes access to the configuration.
	configurationLock sync.RWMutex

	// configuration is the active plugin configuration. Consult getConfiguration and
	// setConfiguration for usage.
	configuration *configuration
}

// OnActivate is invoked when the plugin is activated. If an error is returned, the plugin will be deactivated.
func (p *Plugin) OnActivate() error {
	p.client = pluginapi.NewClient(p.API, p.Driver)

	// Build the bridge with its bindings defaulted to the platform KV
	// functions. Bindings stay replaceable for the life of the bridge; the
	// configuration hook rebinds them when the key prefix changes.
	prefix := p.getConfiguration().optionPrefix()
	store := kvstore.NewKVStore(p.client, prefix)
	log := &p.client.Log
	p.bridge = options.New(options.PlatformBindings(store, log), log)

	p.handler = newAPIHandler(p.bridge, func(userID string) bool {
		return p.client.User.HasPermissionTo(userID, model.PermissionManageSystem)
	})

	p.client.Log.Info("Option bridge activated", "prefix", prefix)
	return nil
}

// ServeHTTP handles requests to the plugin's REST API.
func (p *Plugin) ServeHTTP(c *plugin.Context, w http.ResponseWriter, r *http.Request) {
	if p.handler == nil {
		http.Error(w, "plugin not ready", http.StatusServiceUnavailable)
		return
	}
	p.handler.ServeHTTP(w, r)
}

// rebindPlatform points the bridge's bindings at a store built from the
// current configuration. Called after a configuration change so a new key
// prefix applies to all subsequent operations; calls already completed are
// unaffected.
func (p *Plugin) rebindPlatform() {
	if p.client == nil || p.bridge == nil {
		// Configuration can change before OnActivate builds the bridge.
		return
	}

	store := kvstore.NewKVStore(p.client, p.getConfiguration().optionPrefix())
	bindings := options.PlatformBindings(store, &p.client.Log)
	p.bridge.SetReadFunction(bindings.Read)
	p.bridge.SetCreateFunction(bindings.Create)
	p.bridge.SetUpdateFunction(bindings.Update)
	p.bridge.SetDeleteFunction(bindings.Delete)
}

// See https://developers.mattermost.com/extend/plugins/server/reference/
