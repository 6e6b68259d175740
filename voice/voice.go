// Package voice defines the audio boundary of the planner. Speech capture
// and synthesis are external concerns; the planner core only ever sees
// transcribed text going in and response text going out.
package voice

import "context"

// Transcriber converts captured audio into text. The interactive REPL
// substitutes typed input for this boundary.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Speaker reads a response aloud.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

type NoopSpeaker struct{}

func (NoopSpeaker) Speak(context.Context, string) error {
	return nil
}
