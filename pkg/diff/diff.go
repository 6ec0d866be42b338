package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op marks how a line differs between two documents.
type Op int

const (
	OpEqual Op = iota
	OpDelete
	OpInsert
)

// Prefix is the unified diff marker for op.
func (o Op) Prefix() string {
	switch o {
	case OpDelete:
		return "-"
	case OpInsert:
		return "+"
	default:
		return " "
	}
}

// Line is one line of a diff.
type Line struct {
	Op   Op
	Text string
}

// Lines compares from and to line by line.
func Lines(from, to string) []Line {
	dmp := diffmatchpatch.New()
	a, b, table := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), table)

	var out []Line
	for _, d := range diffs {
		op := OpEqual
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = OpDelete
		case diffmatchpatch.DiffInsert:
			op = OpInsert
		}
		for _, text := range splitLines(d.Text) {
			out = append(out, Line{Op: op, Text: text})
		}
	}
	return out
}

// Changed counts the inserted and deleted lines.
func Changed(lines []Line) (deleted, inserted int) {
	for _, l := range lines {
		switch l.Op {
		case OpDelete:
			deleted++
		case OpInsert:
			inserted++
		}
	}
	return deleted, inserted
}

// Unified renders a single-hunk unified diff. Identical input yields "".
func Unified(from, to, fromLabel, toLabel string) string {
	if from == to {
		return ""
	}
	lines := Lines(from, to)

	var b strings.Builder
	b.WriteString("--- " + fromLabel + "\n")
	b.WriteString("+++ " + toLabel + "\n")
	b.WriteString(hunkHeader(from, to))
	for _, l := range lines {
		b.WriteString(l.Op.Prefix())
		b.WriteString(l.Text)
		b.WriteString("\n")
	}
	return b.String()
}

func hunkHeader(from, to string) string {
	return fmt.Sprintf("@@ -1,%d +1,%d @@\n", len(splitLines(from)), len(splitLines(to)))
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
