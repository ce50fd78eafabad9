package diagfmt

import (
	"fmt"
	"io"

	"bracketlint/internal/diag"
	"bracketlint/internal/source"
)

// Options bundles the settings of every renderer.
type Options struct {
	Format Format
	Pretty PrettyOpts
	JSON   JSONOpts
}

// Write renders bag in the selected format.
func Write(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts Options) error {
	switch opts.Format {
	case FormatPretty:
		Pretty(w, bag, fs, opts.Pretty)
		return nil
	case FormatJSON:
		return JSON(w, bag, fs, opts.JSON)
	case FormatMsgpack:
		return Msgpack(w, bag, fs, opts.JSON)
	case FormatShort:
		_, err := io.WriteString(w, diag.FormatShort(bag.Items(), fs, opts.Pretty.ShowNotes))
		return err
	}
	return fmt.Errorf("diagfmt: unsupported format %s", opts.Format)
}
