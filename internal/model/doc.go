package model

// Package model defines the tracked item record shared by the store, the
// desktop UI and the CLI. Items carry their expiration in the same textual
// form that is written to disk, so a record that fails to parse is kept and
// shown rather than dropped.
