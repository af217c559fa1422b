package driver

import (
	"encoding/json"
	"fmt"

	"piyathon/internal/diag"
	"piyathon/internal/observ"
	"piyathon/internal/source"
)

type timingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// TimingDiagnostic turns a timer report into an info diagnostic whose note
// carries the JSON payload.
func TimingDiagnostic(kind, path string, report observ.Report) diag.Diagnostic {
	payload := timingPayload{Kind: kind, Path: path, TotalMS: report.TotalMS, Phases: report.Phases}
	if payload.Kind == "" {
		payload.Kind = "translate"
	}
	msg := fmt.Sprintf("timings (%s): total %.2f ms", payload.Kind, payload.TotalMS)
	if payload.Path != "" {
		msg = fmt.Sprintf("%s, %s", msg, payload.Path)
	}

	d := diag.New(diag.SevInfo, diag.ObsTimings, source.Span{}, msg)
	if data, err := json.Marshal(payload); err == nil {
		d = d.WithNote(source.Span{}, string(data))
	}
	return d
}
