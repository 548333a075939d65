// Package types defines the core contracts shared across summary-kit:
// the SummaryProvider interface implemented by the cloud and local
// backends, the descriptor records that make up the model catalog,
// per-call summary outcomes, the aggregate result envelope, and the
// standardized error taxonomy.
package types
