// Package config loads the build parameters.
//
// Parameters are layered with koanf, lowest first: the embedded defaults,
// a settings file, SCRPATCH_ environment variables and --set overrides.
// The merged result is decoded into Params, validated and handed to the
// build by value.
package config
