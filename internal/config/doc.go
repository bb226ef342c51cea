// Package config resolves CLI settings from a YAML file and FORMBUILDER_*
// environment variables.
package config
