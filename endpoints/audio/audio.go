// Package audio binds the speech, transcription, and translation endpoints
// of the Nexos AI API.
package audio

import (
	"errors"

	"github.com/nexos-labs/nexos-go/core"
	"github.com/nexos-labs/nexos-go/domain"
)

// Operation names accepted by the audio request managers.
const (
	OpWithVoice    = "with_voice"
	OpWithSpeed    = "with_speed"
	OpWithLanguage = "with_language"
	OpWithPrompt   = "with_prompt"
)

// Speech is the controller for "POST: /audio/speech".
type Speech struct {
	*core.Controller[domain.AudioSpeechRequest, domain.SpeechResponse]
}

// NewSpeech builds the speech synthesis controller.
func NewSpeech(transport *core.Transport) *Speech {
	ops := core.NewOperations[domain.AudioSpeechRequest]().
		MustRegister(OpWithVoice, withVoice).
		MustRegister(OpWithSpeed, withSpeed)

	return &Speech{core.MustController[domain.AudioSpeechRequest, domain.SpeechResponse](
		"audio.speech", "POST: /audio/speech", transport,
		core.WithOperations[domain.AudioSpeechRequest, domain.SpeechResponse](ops),
	)}
}

// Transcription is the controller for "POST: /audio/transcriptions".
type Transcription struct {
	*core.Controller[domain.AudioTranscriptionRequest, domain.TranscriptionResponse]
}

// NewTranscription builds the transcription controller.
func NewTranscription(transport *core.Transport) *Transcription {
	ops := core.NewOperations[domain.AudioTranscriptionRequest]().
		MustRegister(OpWithLanguage, withLanguage).
		MustRegister(OpWithPrompt, transcriptionPrompt)

	return &Transcription{core.MustController[domain.AudioTranscriptionRequest, domain.TranscriptionResponse](
		"audio.transcriptions", "POST: /audio/transcriptions", transport,
		core.WithOperations[domain.AudioTranscriptionRequest, domain.TranscriptionResponse](ops),
	)}
}

// Translation is the controller for "POST: /audio/translations".
type Translation struct {
	*core.Controller[domain.AudioTranslationRequest, domain.TranslationResponse]
}

// NewTranslation builds the translation controller.
func NewTranslation(transport *core.Transport) *Translation {
	ops := core.NewOperations[domain.AudioTranslationRequest]().
		MustRegister(OpWithPrompt, translationPrompt)

	return &Translation{core.MustController[domain.AudioTranslationRequest, domain.TranslationResponse](
		"audio.translations", "POST: /audio/translations", transport,
		core.WithOperations[domain.AudioTranslationRequest, domain.TranslationResponse](ops),
	)}
}

func withVoice(pending *domain.AudioSpeechRequest, args core.Args) error {
	voice, ok := args.String("voice")
	if !ok {
		return errors.New(`requires a string argument "voice"`)
	}
	pending.Voice = voice
	return nil
}

func withSpeed(pending *domain.AudioSpeechRequest, args core.Args) error {
	speed, ok := args.Float("speed")
	if !ok {
		return errors.New(`requires a numeric argument "speed"`)
	}
	pending.Speed = &speed
	return nil
}

func withLanguage(pending *domain.AudioTranscriptionRequest, args core.Args) error {
	language, ok := args.String("language")
	if !ok {
		return errors.New(`requires a string argument "language"`)
	}
	pending.Language = language
	return nil
}

func transcriptionPrompt(pending *domain.AudioTranscriptionRequest, args core.Args) error {
	prompt, ok := args.String("prompt")
	if !ok {
		return errors.New(`requires a string argument "prompt"`)
	}
	pending.Prompt = prompt
	return nil
}

func translationPrompt(pending *domain.AudioTranslationRequest, args core.Args) error {
	prompt, ok := args.String("prompt")
	if !ok {
		return errors.New(`requires a string argument "prompt"`)
	}
	pending.Prompt = prompt
	return nil
}
