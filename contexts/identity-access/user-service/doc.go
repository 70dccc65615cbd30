// Package user implements user lifecycle inside identity-access: public
// registration, admin-only creation, role-dependent reads, updates with
// admin-gated role changes, and user deletion with the best-effort cascade
// over owned shopping lists, their items, and allow-list references.
package user
