// Package config defines the format-agnostic model of a recipe configuration,
// along with the Loader interface used to read it from various sources.
//
// The `config.Model` is the single source of truth for the `app` package.
// Concrete implementations of the interface, such as for HCL, are provided in
// separate packages.
package config
