package diagfmt

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"bracketlint/internal/diag"
	"bracketlint/internal/source"
)

// Msgpack writes the same document as JSON in msgpack encoding. Field names
// follow the json tags so consumers can share one schema.
func Msgpack(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("json")
	enc.SetOmitEmpty(true)
	return enc.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}

// DecodeMsgpack reads a document written by Msgpack.
func DecodeMsgpack(r io.Reader) (DiagnosticsOutput, error) {
	var out DiagnosticsOutput
	dec := msgpack.NewDecoder(r)
	dec.SetCustomStructTag("json")
	err := dec.Decode(&out)
	return out, err
}
