// Package internal contains the core infrastructure for the consolemenu layer.
// This includes logging, console backends, input sources, button mappings and
// localization. Types and functions in this package are not part of the public API.
package internal
