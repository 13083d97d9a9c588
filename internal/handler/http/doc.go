// Package http implements the HTTP transport layer of the application.
//
// Every request traverses one fixed [Pipeline] of interceptors before
// exactly one terminal handler is selected from an immutable [RouteTable].
// After the infrastructure interceptors (panic recovery, tracing, metrics,
// access log, timeout, compression) the stages run in this order:
//
//  1. body decoding
//  2. static asset short-circuit, favicon included
//  3. cookie extraction
//  4. session resolution
//  5. authentication resolution
//  6. context projection into [models.Locals]
//  7. terminal dispatch
//
// Stages share state through the per-request [models.RequestContext].
package http
