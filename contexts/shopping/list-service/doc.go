// Package shoppinglist implements shopping list lifecycle: creation with
// owner attachment, the allow-list (add/remove contributor), reads populated
// with items and contributors, updates, and deletion that detaches the list
// from its owner. List deletion deliberately does not touch items; only the
// user-deletion cascade in user-service cleans those up.
package shoppinglist
