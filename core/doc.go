// Package core provides the foundational domain types shared by every part
// of PharmaMesh. It defines:
//
//   - Specialist (the closed set of domain responder identities)
//   - Message (one immutable conversation turn)
//   - Conversation (append-only history + immutable instruction contexts)
//   - The error taxonomy surfaced by the orchestration loop
//
// The package intentionally keeps implementation concerns (routing, model
// providers, knowledge lookup, orchestration) out of scope so higher layers
// can depend on a small, stable contract.
package core
