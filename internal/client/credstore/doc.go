// Package credstore persists the session's token pair between runs.
//
// Store is a three-operation key/value contract (Save, Load, Delete).
// SQLiteStore keeps values in a local SQLite file, sealed with AES-GCM
// under a key derived from the configured store secret; MemoryStore keeps
// them in process and is used by tests and ephemeral runs.
//
// Every failure is reported as *StoreError carrying the operation and key.
package credstore
