package expiry

// Package expiry turns user-entered shelf-life expressions ("7d", "2w", "inf")
// and canonical timestamps into absolute expiration instants, and maps an
// expiration back to the remaining-time text shown in the list.
