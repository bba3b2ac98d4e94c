// Package types defines the core types and collaborator interfaces used
// throughout residue. This includes the canonical UninstallEntry produced by
// factories, the raw FeatureRecord and Shortcut inputs, and the JunkNode
// candidates with their additive Confidence annotation.
package types
