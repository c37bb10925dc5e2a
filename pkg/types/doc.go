// Package types defines the public data model and error taxonomy for
// dieselkit: decoded scene nodes and their payload variants, the
// resolved intermediate representation handed to scene-realization
// consumers, decode options, and typed errors.
//
// The types here are produced by the model package and are independent
// of any host 3D application; a consumer is expected to map IRNode
// sequences onto its own object, mesh, and animation structures.
package types
