// Package geminicli contains the shared data model for the conversation
// core: the tool call and result types exchanged between the model and the
// scheduler, the conversation content types producers accumulate as history,
// and the closed set of outward messages the core emits to its caller.
//
// The moving parts live in subpackages:
//
//   - agent: the conversation loop, stream classifier and tool scheduler
//   - tool: the capability registry and the built-in tools
//   - event: the producer-side stream event union
//   - provider/google, provider/anthropic, provider/openai: streaming backends
//   - mcp: tools sourced from Model Context Protocol servers
//   - session: configuration and wiring
package geminicli
