// Package scaffold generates starter registry entities from embedded
// templates. It powers the "regkit create" command, producing a source
// file in the right category directory with the entity's identifier forms
// pre-filled.
package scaffold
