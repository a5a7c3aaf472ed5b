// Package router decides which specialist should handle the next step of a
// conversation. Scoring is a two-stage strategy: a deterministic keyword
// scorer runs first, and only when it produces no winner is the generation
// capability consulted to classify the query. Both stages are pluggable
// interfaces (Scorer, Classifier) so either can be swapped or tested
// independently of the orchestration loop.
package router
