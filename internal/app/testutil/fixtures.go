package testutil

// SampleTranscript is a short two-speaker sales call
const SampleTranscript = "Speaker 0: Hi, this is Sam from Acme, do you have a minute? " +
	"Speaker 1: Sure, what is this about? " +
	"Speaker 0: You mentioned your team struggles with follow-ups. What does that look like today?"

// SampleAudio stands in for an uploaded recording
var SampleAudio = []byte("ID3\x03\x00\x00\x00fake-mp3-frames")
