// Package vfs implements scaffold.Backend on top of afero file systems. It
// provides a real on-disk backend rooted at a project directory, an
// in-memory backend for tests, and a dry-run overlay that reads from disk
// but keeps every write in memory.
package vfs
