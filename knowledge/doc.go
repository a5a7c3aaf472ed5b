// Package knowledge provides the domain data lookup used to ground
// specialist answers. The orchestration core never consumes it directly:
// lookups happen in the collaborator layer, which folds the retrieved facts
// into the specialists' instruction contexts before handing them to the
// orchestrator (see EnrichContexts).
//
// InMemorySource ships a small fixed dataset standing in for real clinical
// trial, patent, regulatory and journal databases. Production deployments
// implement Source against their own backends.
package knowledge
