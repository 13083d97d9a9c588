// Package session binds server-side session records to clients through a
// single signed cookie.
//
// The cookie carries only the session id followed by a dot and the
// base64url HMAC-SHA256 of the id. A cookie whose signature does not verify
// is treated exactly like a missing cookie.
//
// Sessions are persisted lazily: [Manager.Commit] writes a record only when
// it was modified during the request, and every write moves its expiry to
// now plus the configured TTL.
package session
