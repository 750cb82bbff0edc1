// Package api defines the wire types for the GlassOS assumption-extraction
// endpoint.
//
// This package provides the request/response schema for the extraction
// operation, the structured error model, and JSON-schema validation of
// incoming request bodies. It performs no I/O beyond schema compilation
// at package init.
//
// Core types:
//   - [ExtractionRequest]: client request carrying a user prompt and the
//     AI response to analyze
//   - [AssumptionList]: ordered list of inferred assumptions
//   - [APIError]: structured error with type, code, param, and message
package api
