// Package agent implements the multi-turn tool-calling conversation loop.
//
// The loop drives an interaction between a streaming Producer and a set of
// registered tools: it sends input, classifies the resulting event stream
// into outward messages while collecting tool call requests, executes the
// requests sequentially, and feeds the results back as the next turn's
// input, until a turn requests no tools.
//
// The caller observes the conversation exclusively through the
// geminicli.Emitter callback; Run never propagates a failure.
package agent
