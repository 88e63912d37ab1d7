// Package templates serves the XML templates used by the scaffolders. The
// templates are compiled into the binary; a user directory can override any
// of them by providing a file with the same name.
package templates
