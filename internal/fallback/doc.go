// Package fallback serves hand-authored demo content when a live generation
// cannot produce a usable result. Every entry satisfies the
// domain.GeneratedContent invariants; lookups never fail.
package fallback
