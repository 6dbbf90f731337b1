// Package utils provides loose type conversion helpers shared by catalog
// decoding and HTTP query parsing.
package utils
