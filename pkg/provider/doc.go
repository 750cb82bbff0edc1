// Package provider defines the backend-agnostic interface for assumption
// extraction. Each adapter implementation (e.g., openai) handles its own
// backend protocol internally: prompt construction, the completion call,
// and parsing of the semi-structured result. Backend protocol details
// stay invisible to the extraction service.
package provider
