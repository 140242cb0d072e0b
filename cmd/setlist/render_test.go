package main

import (
	"strings"
	"testing"
)

func TestRenderTableRightAlignsNumericColumns(t *testing.T) {
	out := renderTable(
		[]string{"#", "Cue"},
		[][]string{{"1", "Verse 1"}, {"12", "Chorus"}},
		0)
	lines := strings.Split(out, "\n")
	if len(lines) < 5 {
		t.Fatalf("table output too short:\n%s", out)
	}
	if !strings.Contains(lines[1], "#") || !strings.Contains(lines[1], "Cue") {
		t.Errorf("header line = %q", lines[1])
	}
	var one, twelve string
	for _, line := range lines {
		if strings.Contains(line, "Verse 1") {
			one = line
		}
		if strings.Contains(line, "Chorus") {
			twelve = line
		}
	}
	if strings.Index(one, "1") <= strings.Index(twelve, "12") {
		t.Errorf("numeric column not right aligned:\n%s", out)
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable([]string{"Role", "File"}, [][]string{{"song"}})
	if !strings.Contains(out, "song") {
		t.Errorf("row missing:\n%s", out)
	}
}

func TestRenderStatusLine(t *testing.T) {
	plain := renderStatusLine("Cue references", statusWarn, "1 dangling", false)
	if !strings.Contains(plain, "Cue references:") || !strings.Contains(plain, "[WARN] 1 dangling") {
		t.Errorf("line = %q", plain)
	}
	if strings.Contains(plain, "\x1b[") {
		t.Errorf("plain line carries ANSI codes: %q", plain)
	}

	colored := renderStatusLine("Arrangements", statusOK, "", true)
	if !strings.HasPrefix(colored, "\x1b[32m") || !strings.HasSuffix(colored, ansiReset) {
		t.Errorf("colored line = %q", colored)
	}
	if !strings.Contains(colored, "[OK]") {
		t.Errorf("colored line = %q", colored)
	}
}
