package commands

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	pydev "github.com/jag-main/python-dev-template"
	"github.com/jag-main/python-dev-template/internal/generate"
	"github.com/jag-main/python-dev-template/internal/output"
	"github.com/jag-main/python-dev-template/internal/project"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd creates the pydev command. The CLI is a single entry point:
// the root command itself runs a generation.
func RootCmd() *cobra.Command {
	var (
		verbose     bool
		pythonVer   string
		targetDir   string
		author      string
		modeFlag    string
		templateDir string
		dryRun      bool
		noGit       bool
	)

	cmd := &cobra.Command{
		Use:   "pydev [project-name]",
		Short: "Scaffold a modern Python project",
		Long: `Creates a Python project with a uv/ruff/pytest toolchain:
• pyproject.toml with lint, typecheck, and test configuration
• Makefile with development tasks
• direnv environment (.envrc from .envrc-sample)
• git repository with an initial commit

Run with a name to generate a new directory, or run inside a cloned
template checkout to rewrite it in place:

  pydev my-app --python 3.12
  pydev --mode in_place`,
		Version:       pydev.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			mode, err := generate.ParseMode(modeFlag)
			if err != nil {
				output.Error(err.Error())
				return err
			}

			src, srcDir, err := resolveTemplate(templateDir)
			if err != nil {
				output.Error(err.Error())
				return err
			}

			v := newConfig(cmd)
			res, err := generate.Run(cmd.Context(), generate.Options{
				Name:          name,
				PythonVersion: v.GetString("python"),
				Author:        v.GetString("author"),
				TargetDir:     targetDir,
				ModeOverride:  mode,
				Source:        src,
				SourceDir:     srcDir,
				DryRun:        dryRun,
				SkipGit:       noGit,
			})
			if err != nil {
				output.Error(err.Error())
				return err
			}

			if dryRun {
				output.Info("Dry run, nothing written")
				return nil
			}

			output.Success(fmt.Sprintf("Created project: %s", res.Name))
			output.Step("Next steps:")
			if res.Mode == generate.ModeGenerate {
				output.Step(fmt.Sprintf("  cd %s", res.Name))
			}
			output.Step("  make install")
			output.Step("  make test")
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.Flags().StringVarP(&pythonVer, "python", "p", project.DefaultPythonVersion, "Python version (3.9 or newer)")
	cmd.Flags().StringVarP(&targetDir, "target", "t", "", "Parent directory for the generated project")
	cmd.Flags().StringVarP(&author, "author", "a", project.DefaultAuthor, "Author name for pyproject.toml")
	cmd.Flags().StringVarP(&modeFlag, "mode", "m", "", "Force mode: in_place or generate")
	cmd.Flags().StringVar(&templateDir, "template", "", "Template directory (default: built-in template)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be written without writing")
	cmd.Flags().BoolVar(&noGit, "no-git", false, "Skip git initialization")

	return cmd
}

// newConfig layers flag > env > config file > default for the settings
// that have ambient defaults. Env vars are PYDEV_PYTHON and PYDEV_AUTHOR;
// the optional config file is ~/.pydev.yaml.
func newConfig(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("pydev")
	v.AutomaticEnv()

	v.SetConfigName(".pydev")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	// Missing config files are fine.
	_ = v.ReadInConfig()

	_ = v.BindPFlag("python", cmd.Flags().Lookup("python"))
	_ = v.BindPFlag("author", cmd.Flags().Lookup("author"))
	return v
}

// resolveTemplate picks the template source: an on-disk directory when
// --template is set, the embedded default otherwise.
func resolveTemplate(templateDir string) (fs.FS, string, error) {
	if templateDir == "" {
		sub, err := fs.Sub(pydev.Templates, pydev.DefaultTemplateRoot)
		if err != nil {
			return nil, "", fmt.Errorf("loading built-in template: %w", err)
		}
		return sub, "", nil
	}

	abs, err := filepath.Abs(templateDir)
	if err != nil {
		return nil, "", fmt.Errorf("resolving template directory: %w", err)
	}
	return os.DirFS(abs), abs, nil
}
