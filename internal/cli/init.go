package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vvka-141/dmart/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [target_path]",
	Short: "Initialize a new dmart project",
	Long: `Initialize a dmart project into the specified directory.

The init command scaffolds:
- dmart.yaml with the documented defaults
- Sample CSV files for all five entities (categories, products, customers,
  orders, reviews) whose references resolve when loaded in order
- A starter report.sql

Existing files are never overwritten unless --force is given.

Examples:
  dmart init .                    # Initialize in current directory
  dmart init ./mymart             # Initialize in ./mymart`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing files")
}

func runInit(cmd *cobra.Command, args []string) error {
	targetPath := projectPathFromArgs(args)

	if err := os.MkdirAll(targetPath, 0755); err != nil {
		return fmt.Errorf("create target directory: %w", err)
	}

	if !initForce {
		if _, err := os.Stat(filepath.Join(targetPath, config.ConfigFileName)); err == nil {
			return fmt.Errorf("%s already exists in %s (use --force to overwrite)",
				config.ConfigFileName, targetPath)
		}
	}

	names := make([]string, 0, len(templateFiles))
	for name := range templateFiles {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(targetPath, name)
		if !initForce {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
		}
		if err := os.WriteFile(path, []byte(templateFiles[name]), 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	fmt.Fprintf(os.Stderr, "\n✓ Project initialized successfully in '%s'\n\n", targetPath)
	fmt.Fprintln(os.Stderr, "Created files:")
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %s\n", name)
	}
	fmt.Fprintln(os.Stderr, "\nNext steps:")
	if targetPath != "." {
		fmt.Fprintf(os.Stderr, "  cd %s\n", targetPath)
	}
	fmt.Fprintln(os.Stderr, "  dmart load .")
	fmt.Fprintln(os.Stderr, "  dmart report .")

	return nil
}
