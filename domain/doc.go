// Package domain defines the request and response schemas of the Nexos AI
// API: passive validated containers moved over the wire by the endpoint
// controllers in package core.
//
// Request types carry validate tags enforced by RequestManager.Prepare;
// response types decode from JSON and are deliberately lenient, so the
// zero value of any response doubles as the null response callers receive on
// soft-failed sends.
package domain
