// Package prompt renders analysis prompts for person profiles.
//
// A Formatter turns a validated PersonInfo plus an analysis type into a
// structured markdown prompt string. The rendered prompt is plain input for
// the completion client; this package knows nothing about transport or
// generation parameters.
package prompt
