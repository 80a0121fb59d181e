// Package config defines the YAML/JSON configuration model that can be passed
// to the sandbox service on startup as well as helper functions to load the
// configuration file.  Seed items can be embedded inline or referenced via an
// URL that is resolved when the service bootstraps.
package config
