// Package faultlog renders fault chains as structured zerolog fields.
//
// The fault core performs no I/O; this adapter is the bridge to a logger.
//
//	log.Error().Func(faultlog.Fields(err)).Msg("request failed")
//
// produces
//
//	{"level":"error","error":"top: base","fault":{"message":"top: base","code":500,...},"message":"request failed"}
package faultlog

import (
	"github.com/rs/zerolog"

	fault "github.com/xgx-io/xgx-fault"
)

// FieldName is the key the aggregated report is logged under.
var FieldName = "fault"

// Object returns a zerolog.LogObjectMarshaler for err's aggregated chain.
func Object(err error) zerolog.LogObjectMarshaler {
	return report(fault.Snapshot(err))
}

// Fields returns an event hook attaching err as the standard error field and
// its aggregated report under FieldName. A nil err adds nothing.
func Fields(err error) func(*zerolog.Event) {
	return func(e *zerolog.Event) {
		if err == nil {
			return
		}
		e.Err(err).Object(FieldName, Object(err))
	}
}

type report fault.Report

func (r report) MarshalZerologObject(e *zerolog.Event) {
	e.Str("message", r.Message)
	if i, ok := r.Code.Int(); ok {
		e.Int("code", i)
	} else if s, ok := r.Code.Str(); ok {
		e.Str("code", s)
	}
	if r.UserMessage != "" {
		e.Str("user_message", r.UserMessage)
	}
	if len(r.Internals) > 0 {
		e.Strs("internals", r.Internals)
	}
	if len(r.Context) > 0 {
		e.Dict("context", zerolog.Dict().Fields(r.Context))
	}
	if len(r.Origins) > 0 {
		origins := make([]string, len(r.Origins))
		for i, o := range r.Origins {
			origins[i] = o.String()
		}
		e.Strs("origins", origins)
	}
}
