// Package usage decides which Java classes and fields are used implicitly by
// the AEM runtime (Sling Models injection, OSGi declarative services) and so
// should not be reported as dead code. The rules are a fixed table keyed by
// fully qualified annotation names; Scan extracts the classes, fields and
// annotations a rule check needs from Java source.
package usage
