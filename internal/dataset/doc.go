// Package dataset defines the seismic event record model and raw catalog
// loading.
//
// The Event type is the unit of data for the whole pipeline. Loading is
// deliberately forgiving: per-field parse failures are coerced to absent
// values (NaN for numerics, the zero time for timestamps) rather than
// failing the run, matching the null-tolerant design of the cleaning
// stages that follow.
package dataset
