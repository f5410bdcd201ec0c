// Package config provides configuration loading, merging, and validation
// facilities for studytrack.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetClientConfig] for the study client and
// [GetEmulatorConfig] for the local backend emulator.
package config
