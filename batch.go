package main

import (
	_ "embed"
	"os"
	"strings"
	"text/template"
)

// DefaultOutput is the batch file written when no output name is configured.
const DefaultOutput = "CleanRebuild.bat"

// batchTemplate is the clean rebuild script. Its UnrealBuildTool lookup
// order and invocations are what existing projects rely on, so it is kept
// as literal script text with three substitution points.
//
//go:embed templates/CleanRebuild.bat.tmpl
var batchTemplate string

var batchTmpl = template.Must(template.New("CleanRebuild.bat").Option("missingkey=error").Parse(batchTemplate))

// BatchContext holds the values substituted into the script.
type BatchContext struct {
	ProjectFile  string
	ProjectName  string
	EditorTarget string
}

// RenderBatch renders the clean rebuild script with LF line endings.
// Values are inserted verbatim.
func RenderBatch(ctx BatchContext) (string, error) {
	var sb strings.Builder
	if err := batchTmpl.Execute(&sb, ctx); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteBatch writes text to path with CRLF line endings, replacing any
// existing file.
func WriteBatch(path, text string) error {
	return os.WriteFile(path, []byte(strings.ReplaceAll(text, "\n", "\r\n")), 0644)
}
