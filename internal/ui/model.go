// Package ui implements the interactive form mode: a sequence of prompts that
// collects a root path and traversal options, then renders the resulting tree.
package ui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/temirov/ftree/internal/builder"
	"github.com/temirov/ftree/internal/config"
	"github.com/temirov/ftree/internal/export"
	"github.com/temirov/ftree/internal/fsys"
	"github.com/temirov/ftree/internal/render"
	"github.com/temirov/ftree/internal/services/clipboard"
)

type step int

const (
	stepFolderPath step = iota
	stepIncludeHidden
	stepMaxDepth
	stepIncludeFiles
	stepShowFullPath
	stepExportPath
	stepResult
)

const (
	statusFolderRequired     = "Folder path is required"
	statusFolderInvalid      = "Not an existing folder"
	statusDepthInvalid       = "Depth must be a whole number of zero or greater"
	statusGenerating         = "Generating structure..."
	statusCopied             = "Copied to clipboard"
	statusCopyFailedFormat   = "Clipboard error: %v"
	statusExportFailedFormat = "Export error: %v"
)

type formAnswers struct {
	rootPath      string
	includeHidden bool
	maxDepth      *int
	includeFiles  bool
	showFullPath  bool
	exportPath    string
}

// Model is the Bubble Tea model for the form. All mutation happens through
// value-receiver Update, following the framework's immutable-model style.
type Model struct {
	filesystem   fsys.Filesystem
	copier       clipboard.Copier
	input        textinput.Model
	step         step
	status       string
	generating   bool
	answers      formAnswers
	rendered     string
	summary      render.Summary
	exportedPath string
}

// NewModel constructs the form model starting at the folder path prompt.
func NewModel(filesystem fsys.Filesystem, copier clipboard.Copier) Model {
	pathInput := textinput.New()
	pathInput.Placeholder = "/path/to/folder"
	pathInput.Focus()
	return Model{
		filesystem: filesystem,
		copier:     copier,
		input:      pathInput,
		step:       stepFolderPath,
	}
}

// Run starts the interactive form program on the terminal.
func Run() error {
	program := tea.NewProgram(NewModel(fsys.NewOSFilesystem(), clipboard.NewService()))
	_, runError := program.Run()
	return runError
}

// Init starts the cursor blink of the focused input.
func (model Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update advances the form in response to key presses and generation results.
func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		switch typed.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return model, tea.Quit
		case tea.KeyEnter:
			if model.step != stepResult && !model.generating {
				return model.submitCurrentStep()
			}
			return model, nil
		}
		if model.step == stepResult {
			return model.handleResultKey(typed)
		}
	case generateResultMsg:
		model.generating = false
		model.rendered = typed.rendered
		model.summary = typed.summary
		model.exportedPath = typed.exportedPath
		model.status = ""
		if typed.err != nil {
			model.status = fmt.Sprintf(statusExportFailedFormat, typed.err)
		}
		model.step = stepResult
		return model, nil
	}
	var inputCommand tea.Cmd
	model.input, inputCommand = model.input.Update(msg)
	return model, inputCommand
}

// submitCurrentStep validates the current answer and advances the form.
func (model Model) submitCurrentStep() (tea.Model, tea.Cmd) {
	answer := strings.TrimSpace(model.input.Value())
	switch model.step {
	case stepFolderPath:
		folderPath := stripQuotes(answer)
		if folderPath == "" {
			model.status = statusFolderRequired
			return model, nil
		}
		absolutePath, absolutePathError := filepath.Abs(folderPath)
		if absolutePathError != nil || !model.filesystem.IsDirectory(absolutePath) {
			model.status = statusFolderInvalid
			return model, nil
		}
		model.answers.rootPath = absolutePath
		return model.advance(stepIncludeHidden), nil
	case stepIncludeHidden:
		model.answers.includeHidden = parseYesNo(answer, false)
		return model.advance(stepMaxDepth), nil
	case stepMaxDepth:
		if answer == "" {
			model.answers.maxDepth = nil
			return model.advance(stepIncludeFiles), nil
		}
		depthValue, parseError := strconv.Atoi(answer)
		if parseError != nil || depthValue < 0 {
			model.status = statusDepthInvalid
			return model, nil
		}
		model.answers.maxDepth = &depthValue
		return model.advance(stepIncludeFiles), nil
	case stepIncludeFiles:
		model.answers.includeFiles = parseYesNo(answer, true)
		return model.advance(stepShowFullPath), nil
	case stepShowFullPath:
		model.answers.showFullPath = parseYesNo(answer, false)
		return model.advance(stepExportPath), nil
	case stepExportPath:
		model.answers.exportPath = answer
		model.generating = true
		model.status = statusGenerating
		return model, model.generateCmd()
	}
	return model, nil
}

// advance moves the form to the next step with a cleared input.
func (model Model) advance(next step) Model {
	model.step = next
	model.status = ""
	model.input.SetValue("")
	model.input.Placeholder = placeholderFor(next)
	return model
}

// generateCmd builds, renders and optionally exports the tree off the UI loop.
func (model Model) generateCmd() tea.Cmd {
	answers := model.answers
	filesystem := model.filesystem
	return func() tea.Msg {
		settings := config.Settings{
			ExcludeHidden: !answers.includeHidden,
			MaxDepth:      answers.maxDepth,
			IncludeFiles:  answers.includeFiles,
		}
		tree := builder.Build(filesystem, answers.rootPath, settings)
		renderOptions := render.Options{ShowFullPath: answers.showFullPath}
		result := generateResultMsg{
			rendered: render.Render(tree, renderOptions),
			summary:  render.Summarize(tree),
		}
		if answers.exportPath != "" {
			writtenPath, exportError := export.WriteFile(tree, renderOptions, answers.exportPath)
			result.exportedPath = writtenPath
			result.err = exportError
		}
		return result
	}
}

// handleResultKey processes key presses on the result screen.
func (model Model) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return model, tea.Quit
	case "c":
		if copyError := model.copier.Copy(model.rendered); copyError != nil {
			model.status = fmt.Sprintf(statusCopyFailedFormat, copyError)
		} else {
			model.status = statusCopied
		}
		return model, nil
	}
	return model, nil
}

// parseYesNo interprets a y/n answer, falling back to defaultValue for any
// other input.
func parseYesNo(answer string, defaultValue bool) bool {
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return defaultValue
	}
}

// stripQuotes removes surrounding quotes left by drag-and-dropped paths.
func stripQuotes(value string) string {
	return strings.Trim(value, `"'`)
}

func placeholderFor(formStep step) string {
	switch formStep {
	case stepFolderPath:
		return "/path/to/folder"
	case stepMaxDepth:
		return "unlimited"
	case stepExportPath:
		return "structure.txt"
	default:
		return "y/n"
	}
}
