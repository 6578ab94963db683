// Package heuristmesh is a thin Go client for the Heurist Mesh HTTP API, a
// hosted network of AI agents addressed by string id. It supports:
//
//   - Synchronous agent invocation (SyncRequest): one blocking round trip
//     that returns the agent's response directly.
//   - Asynchronous tasks (CreateTask / QueryTask): create a remote job and
//     poll its status until it finishes.
//   - A convenience poll loop (WaitForTask) implementing the documented
//     call-sleep-repeat pattern with a bounded attempt budget.
//
// Agents accept either a free-text query or a named tool with structured
// arguments; exactly one of the two must be supplied and the client validates
// this before touching the network. All real capability (reasoning, tool
// dispatch, orchestration) lives server-side — the client only shapes JSON
// payloads, authenticates and decodes responses. There is deliberately no
// retry, backoff or rate limiting; every method is a single round trip and
// every failure surfaces as a typed error on the call that triggered it.
package heuristmesh
