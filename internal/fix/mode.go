package fix

import "fmt"

// Mode says what happens to the fixes found in a run.
type Mode uint8

const (
	// ModeDiff prints the fixes as unified diffs and writes nothing.
	ModeDiff Mode = iota
	// ModeGenerate writes the fixed content next to each file as
	// <name>.fixed<ext>.
	ModeGenerate
	// ModeApply rewrites the files in place.
	ModeApply
)

var modeNames = [...]string{
	ModeDiff:     "diff",
	ModeGenerate: "generate",
	ModeApply:    "apply",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// ParseMode maps a configuration value to a Mode. The empty string is diff.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeDiff, nil
	}
	for m, name := range modeNames {
		if name == s {
			return Mode(m), nil
		}
	}
	return ModeDiff, fmt.Errorf("unknown fix mode %q (want diff, generate or apply)", s)
}

// Writes reports whether the mode touches the filesystem.
func (m Mode) Writes() bool { return m != ModeDiff }
