package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"cplcheck/internal/preflight"
	"cplcheck/internal/report"
)

// verdict is the tag printed in the first column of validate and status
// output.
type verdict int

const (
	verdictPass verdict = iota
	verdictFail
	verdictOff
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

const (
	settingWidth    = 14
	problemIndent   = "      "
	maxProblemLines = 5
)

func (v verdict) tag() string {
	switch v {
	case verdictPass:
		return "PASS"
	case verdictFail:
		return "FAIL"
	default:
		return "OFF "
	}
}

func (v verdict) color() string {
	switch v {
	case verdictPass:
		return ansiGreen
	case verdictFail:
		return ansiRed
	default:
		return ansiDim
	}
}

// renderVerdict colours only the tag so paths and messages stay copyable.
func renderVerdict(v verdict, colorize bool) string {
	if !colorize {
		return v.tag()
	}
	return v.color() + v.tag() + ansiReset
}

// renderReportLines prints one line per file. A failed file is followed by
// its schema problems, capped at maxProblemLines.
func renderReportLines(rep report.Report, colorize bool) []string {
	if rep.Valid {
		detail := fmt.Sprintf("%s  %d tracks @ %s", rep.CompositionID, len(rep.Tracks), rep.EditRate)
		if rep.Title != "" {
			detail = fmt.Sprintf("%q  %s", rep.Title, detail)
		}
		return []string{fmt.Sprintf("%s  %s  %s", renderVerdict(verdictPass, colorize), rep.Path, detail)}
	}

	reason := rep.Error
	switch len(rep.Problems) {
	case 0:
	case 1:
		reason = "1 schema problem"
	default:
		reason = fmt.Sprintf("%d schema problems", len(rep.Problems))
	}
	lines := []string{fmt.Sprintf("%s  %s  %s: %s", renderVerdict(verdictFail, colorize), rep.Path, rep.ErrorCode, reason)}
	for idx, problem := range rep.Problems {
		if idx == maxProblemLines {
			lines = append(lines, fmt.Sprintf("%s... and %d more", problemIndent, len(rep.Problems)-idx))
			break
		}
		lines = append(lines, problemIndent+problem.String())
	}
	return lines
}

func renderRunSummary(checked, failed int) string {
	if failed == 0 {
		return fmt.Sprintf("%d checked, all valid", checked)
	}
	return fmt.Sprintf("%d checked, %d failed", checked, failed)
}

// renderCheckLine prints a preflight result. A passing check whose feature
// is switched off is shown as OFF.
func renderCheckLine(result preflight.Result, colorize bool) string {
	v := verdictPass
	switch {
	case !result.Passed:
		v = verdictFail
	case result.Detail == "Disabled":
		v = verdictOff
	}
	return fmt.Sprintf("%s  %-*s %s", renderVerdict(v, colorize), settingWidth+2, result.Name, result.Detail)
}

func renderSetting(name, value string) string {
	return fmt.Sprintf("  %-*s %s", settingWidth, name, value)
}

func renderHeading(title string, colorize bool) string {
	if colorize {
		return ansiBold + title + ansiReset
	}
	return title
}

func shouldColorize(writer io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
