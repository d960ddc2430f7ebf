package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/dmart/internal/checksum"
	"github.com/vvka-141/dmart/internal/ingest"
	"github.com/vvka-141/dmart/internal/logging"
	"github.com/vvka-141/dmart/internal/store"
	"github.com/vvka-141/dmart/pkg/dmart"
)

var loadCmd = &cobra.Command{
	Use:   "load [project_path]",
	Short: "Load entity CSV files into the store",
	Long: `Load ingests the project's entity CSV files into the SQLite store.

The load command:
1. Opens the store file, creating it if absent
2. Ensures the five base tables exist (idempotent), with foreign-key
   enforcement enabled for the connection's lifetime
3. Ingests categories, products, customers, orders and reviews — in that
   order, because later entities reference earlier ones
4. Prints the number of newly inserted rows per entity

Rows whose id already exists in the store are silently skipped, never
overwritten; re-running the loader on the same input inserts nothing. A
missing CSV file is a warning and that entity is skipped. A malformed numeric
field or a dangling foreign-key reference fails the whole batch for that
entity and aborts the run.

Arguments:
  project_path    Directory containing the CSV files and optional dmart.yaml
                  (default: current directory)

Examples:
  # Load the current directory's CSVs into ./ecom.db
  dmart load

  # Load a project directory
  dmart load ./sales-data

  # Load into an explicit store file
  dmart load ./sales-data --store /tmp/mart.db`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLoad,
}

type loadFlagValues struct {
	store string
}

var loadFlags loadFlagValues

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().StringVar(&loadFlags.store, "store", "",
		"Path of the SQLite store file (default: 'store' from dmart.yaml, or ecom.db)\n"+
			"Precedence: --store > $DMART_STORE > dmart.yaml > ecom.db")
}

func runLoad(cmd *cobra.Command, args []string) error {
	projectPath := projectPathFromArgs(args)
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	resolved, err := resolveProjectConfig(projectPath, logger)
	if err != nil {
		return err
	}
	if loadFlags.store != "" {
		resolved.StorePath = loadFlags.store
	}

	cfg := &dmart.LoadConfig{
		ProjectPath: projectPath,
		StorePath:   resolved.StorePath,
		DataFiles:   resolved.DataFiles,
		Verbose:     verbose,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	startedAt := time.Now()

	db, err := store.Open(cfg.StorePath)
	if err != nil {
		return err
	}
	// The store connection is released on every path, success or failure.
	defer func() {
		if cerr := store.Close(db); cerr != nil {
			logger.Error("closing store: %v", cerr)
		}
	}()

	if err := store.EnsureSchema(db); err != nil {
		return err
	}

	files := make(map[ingest.Entity]string, len(ingest.IngestOrder))
	for _, e := range ingest.IngestOrder {
		files[e] = cfg.DataFiles[e.String()]
	}

	results, err := ingest.New(db, logger).Run(files)
	if err != nil {
		return err
	}

	var total int64
	var inputs []checksum.Entry
	fmt.Println("Insertion summary:")
	for _, res := range results {
		fmt.Printf("- %s: %d rows inserted\n", res.Entity, res.Inserted)
		total += res.Inserted
		if !res.Skipped {
			inputs = append(inputs, checksum.Entry{Name: res.Entity.String(), Digest: res.Digest})
		}
	}

	runID, err := store.RecordLoadRun(db, startedAt, total, checksum.Combine(inputs))
	if err != nil {
		return err
	}
	logger.Verbose("load run %s: %d rows inserted in %s", runID, total, time.Since(startedAt).Round(time.Millisecond))
	return nil
}
