package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/temirov/ftree/internal/utils"
)

const (
	formTitle        = "Folder Structure Generator"
	resultTitle      = "Folder Structure"
	formHint         = "enter confirm · esc quit"
	resultHint       = "c copy to clipboard · q quit"
	summaryTitle     = "Summary"
	exportedFormat   = "Structure exported to: %s"
	summaryDirFormat = "Directories: %d"
	summaryFileFmt   = "Files: %d"
	summaryErrFormat = "Errors: %d"
	summarySizeFmt   = "Total size: %s"
)

type uiStyles struct {
	headerStyle lipgloss.Style
	promptStyle lipgloss.Style
	mutedStyle  lipgloss.Style
	warnStyle   lipgloss.Style
	okStyle     lipgloss.Style
}

func defaultStyles() uiStyles {
	return uiStyles{
		headerStyle: lipgloss.NewStyle().Bold(true),
		promptStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true),
		mutedStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		warnStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true),
		okStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	}
}

// View renders either the current prompt or the result screen.
func (model Model) View() string {
	styles := defaultStyles()
	if model.step == stepResult {
		return renderResultView(model, styles)
	}
	return renderFormView(model, styles)
}

func renderFormView(model Model, styles uiStyles) string {
	lines := []string{
		styles.headerStyle.Render(formTitle),
		"",
		styles.promptStyle.Render(promptFor(model.step)),
		model.input.View(),
	}
	if model.status != "" {
		statusStyle := styles.warnStyle
		if model.generating {
			statusStyle = styles.mutedStyle
		}
		lines = append(lines, statusStyle.Render(model.status))
	}
	lines = append(lines, "", styles.mutedStyle.Render(formHint))
	return strings.Join(lines, "\n") + "\n"
}

func renderResultView(model Model, styles uiStyles) string {
	lines := []string{
		styles.headerStyle.Render(resultTitle),
		"",
		strings.TrimRight(model.rendered, "\n"),
		"",
		styles.headerStyle.Render(summaryTitle),
		fmt.Sprintf(summaryDirFormat, model.summary.Directories),
		fmt.Sprintf(summaryFileFmt, model.summary.Files),
	}
	if model.summary.Errors > 0 {
		lines = append(lines, styles.warnStyle.Render(fmt.Sprintf(summaryErrFormat, model.summary.Errors)))
	}
	lines = append(lines, fmt.Sprintf(summarySizeFmt, utils.FormatFileSize(model.summary.TotalBytes)))
	if model.exportedPath != "" {
		lines = append(lines, "", styles.okStyle.Render(fmt.Sprintf(exportedFormat, model.exportedPath)))
	}
	if model.status != "" {
		statusStyle := styles.okStyle
		if model.status != statusCopied {
			statusStyle = styles.warnStyle
		}
		lines = append(lines, "", statusStyle.Render(model.status))
	}
	lines = append(lines, "", styles.mutedStyle.Render(resultHint))
	return strings.Join(lines, "\n") + "\n"
}

func promptFor(formStep step) string {
	switch formStep {
	case stepFolderPath:
		return "Folder path (drag and drop works, quotes are stripped):"
	case stepIncludeHidden:
		return "Include hidden files and folders? (y/N)"
	case stepMaxDepth:
		return "Maximum depth (blank for unlimited):"
	case stepIncludeFiles:
		return "Include files? (Y/n)"
	case stepShowFullPath:
		return "Show full paths? (y/N)"
	case stepExportPath:
		return "Export file name, .txt or .json (blank to skip):"
	default:
		return ""
	}
}
