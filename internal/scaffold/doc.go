// Package scaffold generates AEM component and client-library skeletons. It
// powers the "aemx component", "aemx clientlib" and "aemx apply" commands.
// All file system access goes through the Backend interface so the same
// scaffolding rules run against the real disk, an in-memory tree, or a
// dry-run overlay.
package scaffold
