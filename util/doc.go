// Package util provides small generic helpers shared across the module.
//
// It currently contains pointer helpers used to populate optional
// generation parameters.
package util
