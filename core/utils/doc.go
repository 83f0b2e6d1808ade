// Package utils provides helpers for reading loosely typed JSON values, such as
// catalog payloads decoded into map[string]any.
package utils
