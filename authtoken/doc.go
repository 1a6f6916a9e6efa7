// Package authtoken turns a session into short-lived JWTs that a second
// client can send on the session's behalf.
package authtoken
