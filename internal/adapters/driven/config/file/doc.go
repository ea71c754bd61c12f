// Package file provides file-based implementations of driven port interfaces.
// These adapters read and write watch configuration on the local filesystem.
//
// Adapters:
//   - Loader: ConfigurationPort over one TOML, YAML or JSON(C) file
//
// The format is chosen by file extension: .toml, .yaml/.yml, .json/.jsonc.
package file
