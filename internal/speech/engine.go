// Package speech dispatches committed words to a text-to-speech engine
// without ever blocking the capture loop.
package speech

import "context"

// Engine is the contract for synthesizing one utterance. Implementations
// block until playback has been handed off and return any synthesis
// error; callers decide what to do with it.
type Engine interface {
	Speak(ctx context.Context, text string) error
}
