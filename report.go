package fault

import (
	jsoniter "github.com/json-iterator/go"
)

// jsonAPI mirrors encoding/json behavior (sorted map keys, HTML escaping).
var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Report is a snapshot of everything the aggregators fold out of a chain.
type Report struct {
	Message     string
	Code        Code
	UserMessage string
	Public      []string
	Internals   []string
	Context     map[string]any
	Origins     []Origin
}

// Snapshot builds a Report for err. A nil err yields the zero Report.
func Snapshot(err error) Report {
	if err == nil {
		return Report{}
	}
	return Report{
		Message:     err.Error(),
		Code:        CodeOf(err),
		UserMessage: UserMessage(err),
		Public:      PublicMessages(err),
		Internals:   Internals(err),
		Context:     ContextOf(err),
		Origins:     Origins(err),
	}
}

type reportJSON struct {
	Message     string         `json:"message"`
	Code        *Code          `json:"code,omitempty"`
	UserMessage string         `json:"user_message,omitempty"`
	Public      []string       `json:"public,omitempty"`
	Internals   []string       `json:"internals,omitempty"`
	Context     map[string]any `json:"context,omitempty"`
	Origins     []Origin       `json:"origins,omitempty"`
}

// MarshalJSON encodes the report with snake_case keys. Empty parts and an
// unset code are omitted.
func (r Report) MarshalJSON() ([]byte, error) {
	out := reportJSON{
		Message:     r.Message,
		UserMessage: r.UserMessage,
		Public:      r.Public,
		Internals:   r.Internals,
		Context:     r.Context,
		Origins:     r.Origins,
	}
	if !r.Code.IsZero() {
		out.Code = &r.Code
	}
	return jsonAPI.Marshal(out)
}

// MarshalJSON encodes the code as its int or string value, or null.
func (c Code) MarshalJSON() ([]byte, error) {
	return jsonAPI.Marshal(c.Value())
}
