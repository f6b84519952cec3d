// Package config provides configuration loading, merging, and validation
// facilities for the mod manager client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for every field they set):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//
// The main entry point is [GetClientConfig], which derives the
// [ClientConfig] view (including every on-disk folder the pipelines use)
// from the merged [StructuredConfig].
package config
