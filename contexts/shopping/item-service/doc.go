// Package shoppinglistitem implements item lifecycle: batch creation
// attached to a list, reads scoped by list, status/name updates, and batch
// deletion that pulls the deleted ids out of the owning list's item set.
package shoppinglistitem
