// Package model defines the provider-agnostic abstraction for the opaque
// generation capability consumed by PharmaMesh.
//
// Core goals:
//   - Keep request/response shapes minimal and transport independent
//   - Expose a strictly synchronous contract: one request, one message
//   - Signal failure distinctly from "empty but valid" output (an error
//     return is a failure; callers decide how to treat empty text)
//   - Facilitate lightweight mocking for tests (MockModel)
//
// Providers (e.g. OpenAI, Anthropic) implement the Model interface from this
// package so the router, specialist invokers and orchestrator remain
// decoupled from vendor SDKs.
package model
