package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubecoord"
	"github.com/SeamusWaldron/cubecoord/internal/config"
	"github.com/SeamusWaldron/cubecoord/internal/storage"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Build, verify and list cached move tables",
}

var tablesBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Load every move table, building the missing ones",
	Long: `Load the twist, flip and corner permutation move tables from the cache,
building and saving any that are missing. Use --force to discard cached
tables first, for example after a corrupt cache error.`,
	RunE: runTablesBuild,
}

var tablesVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check cached move tables against a fresh build",
	RunE:  runTablesVerify,
}

var tablesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached move tables",
	RunE:  runTablesList,
}

var tablesForce bool

// coordinates lists the tables the CLI manages, in build order.
var coordinates = []cubecoord.Coordinate{
	cubecoord.TwistCoord,
	cubecoord.FlipCoord,
	cubecoord.CornerPermCoord,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	tablesCmd.AddCommand(tablesBuildCmd, tablesVerifyCmd, tablesListCmd)
	tablesBuildCmd.Flags().BoolVarP(&tablesForce, "force", "f", false, "Discard cached tables and rebuild")
}

// tableStore is a cache backend the CLI can also clear.
type tableStore interface {
	cubecoord.TableStore
	Delete(key string) error
}

// openStore opens the configured cache backend. The returned function
// releases it.
func openStore(c *config.Config) (tableStore, func(), error) {
	switch c.Cache.Backend {
	case config.BackendSQLite:
		db, err := storage.Open(c.Cache.DB)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewTableRepository(db), func() { db.Close() }, nil
	default:
		fs, err := cubecoord.NewFileStore(c.Cache.Dir)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	}
}

func buildOptions() []cubecoord.Option {
	return []cubecoord.Option{
		cubecoord.WithWorkers(cfg.Workers),
		cubecoord.WithLogger(logger),
	}
}

func runTablesBuild(cmd *cobra.Command, args []string) error {
	store, done, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer done()

	if tablesForce {
		for _, coord := range coordinates {
			if err := store.Delete(cubecoord.CacheKey(coord)); err != nil {
				return err
			}
		}
	}

	start := time.Now()
	tables, err := cubecoord.LoadTables(cmd.Context(), store, buildOptions()...)
	if err != nil {
		if errors.Is(err, cubecoord.ErrCorruptCache) {
			return fmt.Errorf("%w (run 'cubecoord tables build --force' to rebuild)", err)
		}
		return err
	}

	w := cmd.OutOrStdout()
	for _, t := range tables.All() {
		fmt.Fprintf(w, "%-12s %s\n", t.Name(), labelStyle.Render(fmt.Sprintf("%d x %d entries", t.Size(), cubecoord.NumFaceTurns)))
	}
	fmt.Fprintln(w, okStyle.Render(fmt.Sprintf("ready in %s", time.Since(start).Round(time.Millisecond))))
	return nil
}

func runTablesVerify(cmd *cobra.Command, args []string) error {
	store, done, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer done()

	w := cmd.OutOrStdout()
	failed := 0
	for _, coord := range coordinates {
		status, err := verifyTable(cmd, store, coord)
		if err != nil {
			failed++
			fmt.Fprintf(w, "%-12s %s\n", coord.Name(), errorStyle.Render(err.Error()))
			continue
		}
		fmt.Fprintf(w, "%-12s %s\n", coord.Name(), okStyle.Render(status))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d tables failed verification", failed, len(coordinates))
	}
	return nil
}

// verifyTable compares the cached table for coord with a fresh build.
func verifyTable(cmd *cobra.Command, store cubecoord.TableStore, coord cubecoord.Coordinate) (string, error) {
	data, err := store.Load(cubecoord.CacheKey(coord))
	if err != nil {
		return "", err
	}
	cached, err := cubecoord.ParseMoveTable(coord.Name(), coord.Size(), data)
	if err != nil {
		return "", err
	}
	fresh, err := cubecoord.BuildMoveTable(cmd.Context(), coord, buildOptions()...)
	if err != nil {
		return "", err
	}
	if !cached.Equal(fresh) {
		return "", fmt.Errorf("%w: %s differs from a fresh build", cubecoord.ErrCorruptCache, coord.Name())
	}
	return "ok", nil
}

func runTablesList(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	if cfg.Cache.Backend == config.BackendSQLite {
		db, err := storage.Open(cfg.Cache.DB)
		if err != nil {
			return err
		}
		defer db.Close()

		records, err := storage.NewTableRepository(db).List()
		if err != nil {
			return err
		}
		for _, r := range records {
			fmt.Fprintf(w, "%-18s %9d bytes  %s  %s\n", r.Name, r.ByteLen, r.CreatedAt.Format(time.RFC3339), labelStyle.Render(r.BuildID))
		}
		if len(records) == 0 {
			fmt.Fprintln(w, labelStyle.Render("No cached tables in "+db.Path()))
		}
		return nil
	}

	fs, err := cubecoord.NewFileStore(cfg.Cache.Dir)
	if err != nil {
		return err
	}
	return listFileTables(w, fs)
}

func listFileTables(w io.Writer, fs *cubecoord.FileStore) error {
	found := 0
	for _, coord := range coordinates {
		key := cubecoord.CacheKey(coord)
		info, err := os.Stat(fs.Path(key))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return err
		}
		found++
		fmt.Fprintf(w, "%-18s %9d bytes  %s\n", key, info.Size(), info.ModTime().UTC().Format(time.RFC3339))
	}
	if found == 0 {
		fmt.Fprintln(w, labelStyle.Render("No cached tables in "+fs.Dir()))
	}
	return nil
}
