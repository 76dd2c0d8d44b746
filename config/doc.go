// Package config loads spotigraph settings with viper.
//
// Sources, lowest precedence first: built-in defaults, an optional YAML/TOML/JSON
// file, then SPOTIGRAPH_* environment variables ("dataset.path" is read from
// SPOTIGRAPH_DATASET_PATH). Load never rejects values; Validate reports the
// ones that look wrong as human-readable warnings.
package config
