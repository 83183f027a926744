// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/temirov/ftree/internal/builder"
	"github.com/temirov/ftree/internal/config"
	"github.com/temirov/ftree/internal/export"
	"github.com/temirov/ftree/internal/fsys"
	"github.com/temirov/ftree/internal/render"
	"github.com/temirov/ftree/internal/services/clipboard"
	"github.com/temirov/ftree/internal/types"
	"github.com/temirov/ftree/internal/ui"
	"github.com/temirov/ftree/internal/utils"
)

const (
	outputFlagName    = "output"
	showPathFlagName  = "show-path"
	allFlagName       = "all"
	depthFlagName     = "depth"
	noFilesFlagName   = "no-files"
	summaryFlagName   = "summary"
	formatFlagName    = "format"
	clipboardFlagName = "clipboard"
	versionFlagName   = "version"
	versionTemplate   = "ftree version: %s\n"

	defaultPath          = "."
	rootUse              = "ftree"
	rootShortDescription = "ftree renders folder structure trees"
	rootLongDescription  = `ftree renders the structure of a folder as a tree.
It filters hidden entries, limits traversal depth, and exports the result as
plain text or JSON. Run without arguments to use the interactive form.`

	treeUse              = "tree [path]"
	treeAlias            = "t"
	treeShortDescription = "render the folder structure tree (" + treeAlias + ")"
	// treeLongDescription provides detailed help for the tree command.
	treeLongDescription = `Render the folder structure of a path as a tree.
Use --format to select text or json output and --output to export to a file.`
	// treeUsageExample demonstrates tree command usage.
	treeUsageExample = `  # Render the working directory, hidden entries included
  ftree tree -a .

  # Two levels deep, directories only, exported as JSON
  ftree tree --depth 2 --no-files --output structure.json ~/projects`

	versionFlagDescription   = "display application version"
	outputFlagDescription    = "export file (extension selects .txt or .json)"
	showPathFlagDescription  = "show full paths on directory labels"
	allFlagDescription       = "include hidden files and folders"
	depthFlagDescription     = "maximum depth to traverse"
	noFilesFlagDescription   = "exclude files from the tree"
	summaryFlagDescription   = "print summary statistics"
	formatFlagDescription    = "output format"
	clipboardFlagDescription = "copy the output to the system clipboard"

	invalidFormatMessage = "invalid format value '%s'"
	negativeDepthFormat  = "depth must be zero or greater, got %d"
	// errorAbsolutePathFormat reports failure to resolve an absolute path.
	errorAbsolutePathFormat = "abs failed for '%s': %w"
	// errorPathMissingFormat reports a missing path.
	errorPathMissingFormat = "path '%s' does not exist"
	// errorStatFormat reports failure to retrieve file statistics.
	errorStatFormat = "stat failed for '%s': %w"
	// errorNotDirectoryFormat reports a root path that is not a directory.
	errorNotDirectoryFormat = "path '%s' is not a directory"

	summaryHeader            = "Summary:"
	summaryDirectoriesFormat = "  Directories: %d\n"
	summaryFilesFormat       = "  Files: %d\n"
	summaryErrorsFormat      = "  Errors: %d\n"
	summaryTotalSizeFormat   = "  Total size: %s\n"
	exportConfirmationFormat = "Structure exported to: %s\n"
	clipboardConfirmation    = "Copied to clipboard"
)

// isSupportedFormat reports whether the provided format is recognized.
func isSupportedFormat(format string) bool {
	switch format {
	case types.FormatText, types.FormatJSON:
		return true
	default:
		return false
	}
}

// Execute runs the ftree application.
func Execute() error {
	rootCommand := createRootCommand()
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command. Invoked without a
// subcommand it starts the interactive form.
func createRootCommand() *cobra.Command {
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return ui.Run()
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.AddCommand(createTreeCommand())
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// treeOptions stores the flag values of the tree command.
type treeOptions struct {
	outputPath      string
	showFullPath    bool
	includeHidden   bool
	maxDepth        int
	excludeFiles    bool
	summaryEnabled  bool
	outputFormat    string
	copyToClipboard bool
}

// createTreeCommand returns the tree subcommand.
func createTreeCommand() *cobra.Command {
	var options treeOptions
	options.outputFormat = types.FormatText

	treeCommand := &cobra.Command{
		Use:     treeUse,
		Aliases: []string{treeAlias},
		Short:   treeShortDescription,
		Long:    treeLongDescription,
		Example: treeUsageExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			rootPath := defaultPath
			if len(arguments) == 1 {
				rootPath = arguments[0]
			}
			applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{})
			if configurationError != nil {
				return configurationError
			}
			applyConfiguredDefaults(command, &options, applicationConfiguration.Tree)

			outputFormatLower := strings.ToLower(options.outputFormat)
			if !isSupportedFormat(outputFormatLower) {
				return fmt.Errorf(invalidFormatMessage, outputFormatLower)
			}
			depthLimit, depthError := resolveDepthLimit(command, applicationConfiguration.Tree, options.maxDepth)
			if depthError != nil {
				return depthError
			}
			validatedPath, validationError := resolveAndValidateDirectory(rootPath)
			if validationError != nil {
				return validationError
			}

			settings := config.Settings{
				ExcludeHidden: !options.includeHidden,
				MaxDepth:      depthLimit,
				IncludeFiles:  !options.excludeFiles,
			}
			return runTree(command, validatedPath, settings, options, outputFormatLower)
		},
	}

	treeCommand.Flags().StringVarP(&options.outputPath, outputFlagName, "o", "", outputFlagDescription)
	treeCommand.Flags().BoolVarP(&options.showFullPath, showPathFlagName, "p", false, showPathFlagDescription)
	treeCommand.Flags().BoolVarP(&options.includeHidden, allFlagName, "a", false, allFlagDescription)
	treeCommand.Flags().IntVarP(&options.maxDepth, depthFlagName, "d", 0, depthFlagDescription)
	treeCommand.Flags().BoolVarP(&options.excludeFiles, noFilesFlagName, "n", false, noFilesFlagDescription)
	treeCommand.Flags().BoolVarP(&options.summaryEnabled, summaryFlagName, "s", false, summaryFlagDescription)
	treeCommand.Flags().StringVar(&options.outputFormat, formatFlagName, types.FormatText, formatFlagDescription)
	treeCommand.Flags().BoolVar(&options.copyToClipboard, clipboardFlagName, false, clipboardFlagDescription)
	return treeCommand
}

// applyConfiguredDefaults overlays configuration file values onto flags the
// user did not set explicitly.
func applyConfiguredDefaults(command *cobra.Command, options *treeOptions, configured config.TreeConfiguration) {
	flags := command.Flags()
	if !flags.Changed(formatFlagName) && configured.Format != "" {
		options.outputFormat = configured.Format
	}
	if !flags.Changed(summaryFlagName) && configured.Summary != nil {
		options.summaryEnabled = *configured.Summary
	}
	if !flags.Changed(showPathFlagName) && configured.ShowFullPath != nil {
		options.showFullPath = *configured.ShowFullPath
	}
	if !flags.Changed(allFlagName) && configured.IncludeHidden != nil {
		options.includeHidden = *configured.IncludeHidden
	}
	if !flags.Changed(noFilesFlagName) && configured.IncludeFiles != nil {
		options.excludeFiles = !*configured.IncludeFiles
	}
	if !flags.Changed(clipboardFlagName) && configured.Clipboard != nil {
		options.copyToClipboard = *configured.Clipboard
	}
	if !flags.Changed(outputFlagName) && configured.Output != "" {
		options.outputPath = configured.Output
	}
}

// resolveDepthLimit returns the depth limit to apply, or nil for unlimited
// traversal. The flag takes precedence over the configuration file.
func resolveDepthLimit(command *cobra.Command, configured config.TreeConfiguration, flagValue int) (*int, error) {
	if command.Flags().Changed(depthFlagName) {
		if flagValue < 0 {
			return nil, fmt.Errorf(negativeDepthFormat, flagValue)
		}
		depthLimit := flagValue
		return &depthLimit, nil
	}
	if configured.MaxDepth != nil {
		if *configured.MaxDepth < 0 {
			return nil, fmt.Errorf(negativeDepthFormat, *configured.MaxDepth)
		}
		depthLimit := *configured.MaxDepth
		return &depthLimit, nil
	}
	return nil, nil
}

// runTree builds the tree and produces every requested output surface.
func runTree(command *cobra.Command, validatedPath types.ValidatedPath, settings config.Settings, options treeOptions, outputFormat string) error {
	filesystem := fsys.NewOSFilesystem()
	tree := builder.Build(filesystem, validatedPath.AbsolutePath, settings)
	renderOptions := render.Options{ShowFullPath: options.showFullPath}

	var renderedOutput string
	if outputFormat == types.FormatJSON {
		structured, marshalError := export.MarshalStructured(tree)
		if marshalError != nil {
			return marshalError
		}
		renderedOutput = structured + "\n"
	} else {
		renderedOutput = render.Render(tree, renderOptions)
	}
	fmt.Fprint(command.OutOrStdout(), renderedOutput)

	if options.summaryEnabled {
		printSummary(command, render.Summarize(tree))
	}
	if options.outputPath != "" {
		writtenPath, exportError := export.WriteFile(tree, renderOptions, options.outputPath)
		if exportError != nil {
			return exportError
		}
		fmt.Fprintf(command.OutOrStdout(), exportConfirmationFormat, writtenPath)
	}
	if options.copyToClipboard {
		if copyError := clipboard.NewService().Copy(renderedOutput); copyError != nil {
			return copyError
		}
		fmt.Fprintln(command.OutOrStdout(), clipboardConfirmation)
	}
	return nil
}

// printSummary writes the summary block. Errors are reported only when any
// occurred, matching the text surface users rely on.
func printSummary(command *cobra.Command, summary render.Summary) {
	fmt.Fprintln(command.OutOrStdout(), summaryHeader)
	fmt.Fprintf(command.OutOrStdout(), summaryDirectoriesFormat, summary.Directories)
	fmt.Fprintf(command.OutOrStdout(), summaryFilesFormat, summary.Files)
	if summary.Errors > 0 {
		fmt.Fprintf(command.OutOrStdout(), summaryErrorsFormat, summary.Errors)
	}
	fmt.Fprintf(command.OutOrStdout(), summaryTotalSizeFormat, utils.FormatFileSize(summary.TotalBytes))
}

// resolveAndValidateDirectory converts the input path to absolute form and
// verifies it exists and is a directory. The builder assumes both.
func resolveAndValidateDirectory(inputPath string) (types.ValidatedPath, error) {
	absolutePath, absolutePathError := filepath.Abs(inputPath)
	if absolutePathError != nil {
		return types.ValidatedPath{}, fmt.Errorf(errorAbsolutePathFormat, inputPath, absolutePathError)
	}
	cleanPath := filepath.Clean(absolutePath)
	fileInformation, fileStatusError := os.Stat(cleanPath)
	if fileStatusError != nil {
		if os.IsNotExist(fileStatusError) {
			return types.ValidatedPath{}, fmt.Errorf(errorPathMissingFormat, inputPath)
		}
		return types.ValidatedPath{}, fmt.Errorf(errorStatFormat, inputPath, fileStatusError)
	}
	if !fileInformation.IsDir() {
		return types.ValidatedPath{}, fmt.Errorf(errorNotDirectoryFormat, inputPath)
	}
	return types.ValidatedPath{AbsolutePath: cleanPath, IsDir: true}, nil
}
