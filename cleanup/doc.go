// Package cleanup deletes build-tree paths that must not be archived.
//
// Deletion is driven by a declarative YAML rules file keyed by mode ("ci" or
// "pkg") and platform ("windows", "darwin" or "linux"). Each rule set names
// glob patterns for directories and for files; pattern values may be
// arbitrarily nested lists, which load as flat, de-duplicated sets. The walk
// is top-down and destructive: a matched directory is removed whole and its
// contents are never considered individually.
package cleanup
