// Package extract implements the assumption extraction service. It sits
// between the HTTP transport and the provider layer: the transport
// resolves a provider and hands it to the service, which invokes the
// provider contract and records per-provider metrics. The service never
// reinterprets provider results; ordering and content pass through
// unchanged, and provider errors propagate as errors rather than being
// collapsed into empty results.
package extract
