// Package testutil contains a scriptable mock Mesh sequencer used across
// tests to reduce boilerplate when exercising the client against canned HTTP
// responses and asserting captured request payloads. These helpers are
// intentionally minimal and avoid adding third‑party dependencies. They are
// not intended for production usage.
package testutil
