// Package services contains stateless domain services coordinating behavior
// that does not belong to a single aggregate.
//
// StatusReconciler merges status values pushed by the authoritative backend
// into the locally held order aggregate, enforcing the workflow's
// terminal/forward rules before accepting a push.
package services
