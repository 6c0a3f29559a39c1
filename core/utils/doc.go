// Package utils holds small helpers shared across features: scalar coercion
// for loosely typed API payloads and home-directory path expansion.
package utils
