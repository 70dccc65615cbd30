// Package auth implements the credential side of identity-access: login
// (password check + token issue) and bearer-token verification. Tokens are
// HS256 JWTs carrying the user id and role id; everything beyond claim
// extraction is the authorization-service's concern.
package auth
