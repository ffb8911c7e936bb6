package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lvogt/lifeos/internal/log"
	"github.com/lvogt/lifeos/internal/output"
	"github.com/lvogt/lifeos/internal/tidy"
	"github.com/lvogt/lifeos/internal/ui/styles"
)

func renderToString(t *testing.T, report *tidy.Report, opts tidy.Options, verbose bool) (stdout, stderr string) {
	t.Helper()
	styles.SetPlain(true)
	t.Cleanup(func() { styles.SetPlain(false) })

	var outBuf, logBuf bytes.Buffer
	renderTidyReport(output.New(&outBuf), log.New(&logBuf, verbose), report, opts)
	return outBuf.String(), logBuf.String()
}

func TestRenderTidyReport_DryRun(t *testing.T) {
	report := &tidy.Report{
		DesktopScreenshots: []string{"/d/Screenshot a.png"},
		DesktopOther:       []string{"/d/notes.txt", "/d/todo"},
		DownloadsItems:     []string{"/dl/a", "/dl/b", "/dl/c"},
		DownloadsTotalBytes: 2048,
		DownloadsOldItems:   []string{"/dl/a"},
		DownloadsOldBytes:   1024,
		PlannedMoves:        []tidy.Move{{Source: "/d/Screenshot a.png", Dest: "/s/Screenshot a.png"}},
		PlannedDeletions:    []string{"/dl/a"},
	}

	stdout, _ := renderToString(t, report, tidy.Options{Apply: false}, false)

	want := []string{
		"Desktop: 1 screenshot(s), 2 other item(s)",
		"Downloads: 3 item(s), 2.0 KB total",
		"1 item(s) untouched for over 7 days, 1.0 KB",
		"Planned: 1 move(s), 1 deletion(s) (dry run, nothing changed)",
	}
	for _, line := range want {
		if !strings.Contains(stdout, line) {
			t.Errorf("stdout missing %q\ngot:\n%s", line, stdout)
		}
	}
}

func TestRenderTidyReport_ApplyHasNoDryRunMarker(t *testing.T) {
	report := &tidy.Report{}

	stdout, _ := renderToString(t, report, tidy.Options{Apply: true}, false)

	if strings.Contains(stdout, "dry run") {
		t.Errorf("apply output should not mention dry run:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Planned: 0 move(s), 0 deletion(s)") {
		t.Errorf("missing planned summary:\n%s", stdout)
	}
}

func TestRenderTidyReport_NoWarningWithoutOldItems(t *testing.T) {
	report := &tidy.Report{
		DownloadsItems:      []string{"/dl/a"},
		DownloadsTotalBytes: 10,
	}

	stdout, _ := renderToString(t, report, tidy.Options{}, false)

	if strings.Contains(stdout, "untouched") {
		t.Errorf("warning line shown without old items:\n%s", stdout)
	}
}

func TestRenderTidyReport_VerboseListsActions(t *testing.T) {
	report := &tidy.Report{
		PlannedMoves:     []tidy.Move{{Source: "/d/Screenshot a.png", Dest: "/s/Screenshot a.png"}},
		PlannedDeletions: []string{"/dl/old.zip"},
	}

	_, stderr := renderToString(t, report, tidy.Options{}, true)

	if !strings.Contains(stderr, "move /d/Screenshot a.png -> /s/Screenshot a.png") {
		t.Errorf("stderr missing move line:\n%s", stderr)
	}
	if !strings.Contains(stderr, "delete /dl/old.zip") {
		t.Errorf("stderr missing delete line:\n%s", stderr)
	}

	_, quiet := renderToString(t, report, tidy.Options{}, false)
	if quiet != "" {
		t.Errorf("non-verbose run should not list actions, got:\n%s", quiet)
	}
}

func TestRenderPartial(t *testing.T) {
	styles.SetPlain(true)
	t.Cleanup(func() { styles.SetPlain(false) })

	report := &tidy.Report{
		PlannedMoves:     []tidy.Move{{Source: "a", Dest: "b"}, {Source: "c", Dest: "d"}},
		PlannedDeletions: []string{"x", "y", "z"},
	}
	result := &tidy.ApplyResult{
		Moved:   report.PlannedMoves,
		Deleted: []string{"x"},
	}

	var buf bytes.Buffer
	renderPartial(output.New(&buf), report, result)

	if !strings.Contains(buf.String(), "2 of 2 move(s) and 1 of 3 deletion(s) completed") {
		t.Errorf("partial summary = %q", buf.String())
	}
}
