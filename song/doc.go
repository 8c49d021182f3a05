// SPDX-License-Identifier: EPL-2.0

// Package song holds a complete song: instruments, patterns, their order
// and the tempo. Songs are read from and written to a YAML definition file,
// and rendered through a mixer.Mixer.
package song
