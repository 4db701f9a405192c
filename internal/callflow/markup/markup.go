package markup

import (
	"fmt"
	"strconv"

	"ivr-server/internal/callflow/processor"

	"github.com/twilio/twilio-go/twiml"
)

// DefaultVoice is the Twilio voice used for every prompt.
const DefaultVoice = "alice"

// Renderer turns call flow replies into TwiML documents
type Renderer struct {
	voice string
}

// NewRenderer creates a Renderer speaking with voice, or DefaultVoice when empty
func NewRenderer(voice string) *Renderer {
	if voice == "" {
		voice = DefaultVoice
	}
	return &Renderer{voice: voice}
}

// Render produces <Say> followed by either <Record> or <Dial>, whichever the reply asks for.
func (r *Renderer) Render(reply processor.Reply) (string, error) {
	elements := []twiml.Element{
		&twiml.VoiceSay{
			Voice:   r.voice,
			Message: reply.Say,
		},
	}

	switch {
	case reply.Record != nil:
		elements = append(elements, &twiml.VoiceRecord{
			Action:    reply.Record.Action,
			MaxLength: strconv.Itoa(reply.Record.MaxLength),
			Trim:      reply.Record.Trim,
		})
	case reply.DialNumber != "":
		elements = append(elements, &twiml.VoiceDial{
			Number: reply.DialNumber,
		})
	}

	doc, err := twiml.Voice(elements)
	if err != nil {
		return "", fmt.Errorf("failed to render twiml: %w", err)
	}
	return doc, nil
}

// Say renders a document that only speaks message.
func (r *Renderer) Say(message string) (string, error) {
	return r.Render(processor.Reply{Say: message})
}
