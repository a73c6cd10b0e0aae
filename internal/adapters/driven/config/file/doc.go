// Package file loads Stargazer settings from a TOML file.
//
// The file is optional unless named explicitly with --config. Only the keys
// it contains override the defaults; environment variables and flags are
// applied on top by the caller.
package file
