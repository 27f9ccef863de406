// Package testutil provides shared test doubles for the call scripter.
//
// MockServices holds testify mocks of the v1 service interfaces for handler
// tests. MockTranscriptionProvider and MockGenerator stand in for the
// upstream speech-to-text and language model providers in service tests.
// Fixtures provide a sample transcript and recording.
package testutil
