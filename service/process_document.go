package service

import (
	"fmt"
	"strings"

	"devplatform/dao/model"
)

// textFileTypes are MIME types whose inline content is readable as-is.
var textFileTypes = []string{"json", "xml", "javascript", "typescript", "yaml", "markdown", "csv", "sql"}

// BuildProcessDocument assembles the steps of a process into one
// multi-section text document. Nothing is persisted.
func BuildProcessDocument(process *model.Process) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", process.Name)
	if process.Description != nil && strings.TrimSpace(*process.Description) != "" {
		fmt.Fprintf(&b, "\n%s\n", strings.TrimSpace(*process.Description))
	}

	for i, step := range process.Steps.Data() {
		b.WriteString("\n---\n\n")
		title := strings.TrimSpace(step.Title)
		if title == "" {
			title = "ללא כותרת"
		}
		fmt.Fprintf(&b, "## שלב %d: %s\n", i+1, title)
		if d := strings.TrimSpace(step.Description); d != "" {
			fmt.Fprintf(&b, "\n%s\n", d)
		}
		if content := strings.TrimSpace(step.Content); content != "" {
			fmt.Fprintf(&b, "\n%s\n", content)
		}
		if len(step.Files) == 0 {
			continue
		}
		b.WriteString("\n### קבצים מצורפים\n")
		for _, file := range step.Files {
			writeStepFile(&b, file)
		}
	}
	return b.String()
}

func writeStepFile(b *strings.Builder, file model.StepFile) {
	if file.Type != "" {
		fmt.Fprintf(b, "\n#### %s (%s)\n", file.Name, file.Type)
	} else {
		fmt.Fprintf(b, "\n#### %s\n", file.Name)
	}
	if !isTextFile(file) {
		fmt.Fprintf(b, "[קובץ בינארי, %d תווים מקודדים]\n", len(file.Content))
		return
	}
	fmt.Fprintf(b, "```\n%s\n```\n", strings.TrimRight(file.Content, "\n"))
}

func isTextFile(file model.StepFile) bool {
	t := strings.ToLower(file.Type)
	if t == "" || strings.HasPrefix(t, "text/") {
		return !strings.HasPrefix(file.Content, "data:")
	}
	for _, suffix := range textFileTypes {
		if strings.Contains(t, suffix) {
			return true
		}
	}
	return false
}
