// Package diagnosticsjson renders a DiagnosticsSink to JSON for the CLI's
// -json mode and filters it back by severity. Built on
// github.com/tidwall/sjson/github.com/tidwall/gjson rather than
// encoding/json: the pipeline already depends on tidwall/btree for
// Indices (internal/symgraph/indices.go), and sjson/gjson are the same
// vendor's path-based JSON builder/query pair, letting the CLI construct
// and filter diagnostic JSON without declaring marshal structs for a
// format this module only ever writes once and reads back for filtering.
package diagnosticsjson

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"github.com/tsoniclang/generatedts/internal/symgraph"
)

// Render encodes diags as a JSON array of {severity, code, message,
// namespace?, type?, member?} objects, in sink order (P2 determinism: the
// sink's append order is the diagnostic sequence the pipeline guarantees
// is byte-identical across identical runs).
func Render(diags []symgraph.Diagnostic) (string, error) {
	doc := "[]"
	var err error
	for i, d := range diags {
		prefix := itoaPath(i)
		if doc, err = sjson.Set(doc, prefix+".severity", d.Severity.String()); err != nil {
			return "", err
		}
		if doc, err = sjson.Set(doc, prefix+".code", d.Code); err != nil {
			return "", err
		}
		if doc, err = sjson.Set(doc, prefix+".message", d.Message); err != nil {
			return "", err
		}
		if ns, ok := d.Namespace.Take(); ok {
			if doc, err = sjson.Set(doc, prefix+".namespace", ns); err != nil {
				return "", err
			}
		}
		if typ, ok := d.Type.Take(); ok {
			if doc, err = sjson.Set(doc, prefix+".type", typ); err != nil {
				return "", err
			}
		}
		if member, ok := d.Member.Take(); ok {
			if doc, err = sjson.Set(doc, prefix+".member", member); err != nil {
				return "", err
			}
		}
	}
	return doc, nil
}

// ErrorsOnly filters a previously rendered JSON document down to entries
// whose severity is "error", using a gjson query rather than re-walking
// the original []Diagnostic slice — useful when the CLI only has the
// rendered string on hand (e.g. loaded back from a saved build log).
func ErrorsOnly(doc string) []gjson.Result {
	return gjson.Parse(doc).Get(`#(severity=="error")#`).Array()
}

func itoaPath(i int) string {
	if i == 0 {
		return "0"
	}
	var digits []byte
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	return string(digits)
}
