// Package cli defines the Cobra command tree for the aemx CLI. Each file
// registers one top-level command with the root command. Commands parse
// flags, fill gaps from config, and delegate to the scaffold, plan and usage
// packages; they only handle I/O formatting themselves.
package cli
