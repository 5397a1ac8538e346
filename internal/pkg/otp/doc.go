// Package otp generates one-time passcodes for email verification flows.
//
// Codes are numeric, single-use, and meant to be hashed at rest and bounded
// by a short absolute expiry; the package only concerns itself with
// generation.
package otp
