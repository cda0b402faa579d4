// Package report renders mined patterns into their textual output form:
// per-pattern records with an optional parent line and an optional DFS
// body, plus the separate frequent-vertex (".nodes") file. Save and
// SaveFrequentNodes are the only effectful entry points — a small, option-driven facade in front
// of per-record formatting logic the rest of the module never needs to
// see.
package report
