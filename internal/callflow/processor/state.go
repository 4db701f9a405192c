package processor

import "fmt"

// State is a position in the call flow.
type State int

const (
	StateIdle State = iota
	StateAwaitingEnrollAudio
	StateAwaitingVerifyAudio
	StateProcessingEnroll
	StateProcessingVerify
	// StateTransferred ends the flow with a transfer back to the dispatcher.
	StateTransferred
	// StateEnded ends the call leg after an error prompt.
	StateEnded
)

var stateNames = map[State]string{
	StateIdle:                "idle",
	StateAwaitingEnrollAudio: "awaiting_enroll_audio",
	StateAwaitingVerifyAudio: "awaiting_verify_audio",
	StateProcessingEnroll:    "processing_enroll",
	StateProcessingVerify:    "processing_verify",
	StateTransferred:         "transferred",
	StateEnded:               "ended",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// transitions lists, for each entry state, the states a single webhook may leave the call in.
// Every entry state can end the leg because the session lookup precedes dispatch.
var transitions = map[State][]State{
	StateIdle:             {StateAwaitingEnrollAudio, StateAwaitingVerifyAudio, StateEnded},
	StateProcessingEnroll: {StateAwaitingEnrollAudio, StateTransferred, StateEnded},
	StateProcessingVerify: {StateAwaitingVerifyAudio, StateTransferred, StateEnded},
}

// CanTransition reports whether from → to is a legal step.
func CanTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Callback discriminators carried in the record action URL.
const (
	ParamProcessEnroll = "processenroll"
	ParamProcessVerify = "processverify"
)

// entryState maps the param query value to the state the webhook enters in.
// Anything other than the two continuation values is a fresh dispatch.
func entryState(param string) State {
	switch param {
	case ParamProcessEnroll:
		return StateProcessingEnroll
	case ParamProcessVerify:
		return StateProcessingVerify
	default:
		return StateIdle
	}
}

// awaitingParam is the callback param that resumes an awaiting state.
func awaitingParam(s State) string {
	if s == StateAwaitingEnrollAudio {
		return ParamProcessEnroll
	}
	return ParamProcessVerify
}
