package iqtest

import "github.com/abhisek/brainydate/internal/quiz"

// Every message carries the session ID that produced it. Messages from
// any other session are dropped.

// questionsMsg is sent when the question source has answered.
type questionsMsg struct {
	SessionID string
	Batch     quiz.Batch
	Err       error
}

// tickMsg is sent once per second while the session is active.
type tickMsg struct {
	SessionID string
}

// advanceMsg is sent when the answer lock delay ends.
type advanceMsg struct {
	SessionID string
	Index     int
}
