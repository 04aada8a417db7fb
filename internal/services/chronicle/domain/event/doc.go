// Package event defines the life-event vocabulary recorded in a character
// chronicle: the flag universe tagging each entry, the bitset carrying those
// tags, and the entry record itself.
//
// Entries are immutable once appended, with one exception: artifact state
// transitions rewrite the flag set of an existing entry in place so the
// newest entry for an artifact always reflects its current state.
package event
