package diagfmt

import (
	"encoding/json"
	"io"
	"sort"
	"unicode/utf8"

	"piyathon/internal/diag"
	"piyathon/internal/source"
)

const (
	sarifVersion = "2.1.0"
	sarifSchema  = "https://json.schemastore.org/sarif-2.1.0.json"
)

// SarifRunMeta describes the tool that produced a SARIF run.
type SarifRunMeta struct {
	ToolName       string
	ToolVersion    string
	InformationURI string
}

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool       sarifTool     `json:"tool"`
	ColumnKind string        `json:"columnKind"`
	Results    []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version,omitempty"`
	InformationURI string      `json:"informationUri,omitempty"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysical `json:"physicalLocation"`
}

type sarifPhysical struct {
	ArtifactLocation sarifArtifact `json:"artifactLocation"`
	Region           *sarifRegion  `json:"region,omitempty"`
}

type sarifArtifact struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   uint32 `json:"startLine"`
	StartColumn int    `json:"startColumn"`
	EndLine     uint32 `json:"endLine,omitempty"`
	EndColumn   int    `json:"endColumn,omitempty"`
}

// Sarif форматирует диагностики bag в SARIF (v2.1.0)
func Sarif(w io.Writer, bag *diag.Bag, fs *source.FileSet, meta SarifRunMeta) error {
	return SarifDiagnostics(w, bag.Items(), fs, meta)
}

// SarifDiagnostics is Sarif over a plain slice. Columns are counted in code
// points, so Thai identifiers do not skew regions.
func SarifDiagnostics(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, meta SarifRunMeta) error {
	run := sarifRun{
		Tool: sarifTool{Driver: sarifDriver{
			Name:           meta.ToolName,
			Version:        meta.ToolVersion,
			InformationURI: meta.InformationURI,
			Rules:          sarifRules(diags),
		}},
		ColumnKind: "unicodeCodePoints",
		Results:    make([]sarifResult, 0, len(diags)),
	}
	for _, d := range diags {
		res := sarifResult{
			RuleID:  d.Code.ID(),
			Level:   d.Severity.SarifLevel(),
			Message: sarifMessage{Text: d.Message},
		}
		if f := fileOf(fs, d.Primary); f != nil {
			loc := sarifLocation{PhysicalLocation: sarifPhysical{
				ArtifactLocation: sarifArtifact{URI: displayPath(fs, f, PathModeRelative)},
			}}
			if d.Primary.Start.Line > 0 {
				loc.PhysicalLocation.Region = sarifRegionOf(f, d.Primary)
			}
			res.Locations = []sarifLocation{loc}
		}
		run.Results = append(run.Results, res)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(sarifLog{Version: sarifVersion, Schema: sarifSchema, Runs: []sarifRun{run}})
}

func sarifRules(diags []diag.Diagnostic) []sarifRule {
	seen := make(map[diag.Code]struct{})
	rules := make([]sarifRule, 0)
	for _, d := range diags {
		if _, ok := seen[d.Code]; ok {
			continue
		}
		seen[d.Code] = struct{}{}
		rules = append(rules, sarifRule{ID: d.Code.ID(), ShortDescription: sarifMessage{Text: d.Code.Title()}})
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID < rules[j].ID })
	return rules
}

func sarifRegionOf(f *source.File, span source.Span) *sarifRegion {
	r := &sarifRegion{
		StartLine:   span.Start.Line,
		StartColumn: codePointColumn(f.GetLine(span.Start.Line), span.Start.Col),
	}
	if span.End.Line >= span.Start.Line && span.End.Line > 0 {
		r.EndLine = span.End.Line
		r.EndColumn = codePointColumn(f.GetLine(span.End.Line), span.End.Col)
	}
	return r
}

// codePointColumn turns a 0-based byte column into a 1-based code point one.
func codePointColumn(line string, col uint32) int {
	n := min(int(col), len(line))
	return utf8.RuneCountInString(line[:n]) + 1
}
