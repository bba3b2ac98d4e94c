// Package features turns the optional OS features reported by the feature
// enumeration subsystem into uninstall entries.
//
// The enumeration subsystem is known to hang (see KB957310), so the factory
// always goes through query.Run with a hard deadline.
package features
