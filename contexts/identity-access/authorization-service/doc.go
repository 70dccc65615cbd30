// Package authorization implements the Authorization Service inside the
// shopping-list monolith: role resolution plus the per-route policy checks
// (current-user, admin, owner-or-admin, allowed-user).
//
// Layering:
// - domain: identity/decision entities, errors
// - application: stateless check and resolver services using explicit ports
// - ports: stable boundaries for read-only store lookups
// - adapters: concrete HTTP handler
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under identity-access context.
// - Checks are read-only and recomputed per request, so role edits take
//   effect immediately. No decision state survives a request.
package authorization
