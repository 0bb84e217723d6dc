// Package equiv is kepler-formal's top-level orchestration: it runs a
// serialized two-pass build (the netlist database's top design is not
// thread-safe to switch), fans the per-output cone-extraction and
// conversion work of each side out across a bounded worker pool, matches
// each side's primary-output lists by hierarchical path, builds and
// solves the miter, and aggregates the result into a Verdict that
// degrades gracefully on non-comparable or unknown outputs.
package equiv
