package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ytget/expiration-tracker/internal/config"
	"github.com/ytget/expiration-tracker/internal/expiry"
	"github.com/ytget/expiration-tracker/internal/platform"
	"github.com/ytget/expiration-tracker/internal/store"
)

// Env is everything a command touches outside the process
type Env struct {
	Fs  afero.Fs
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// CopyText writes to the system clipboard
	CopyText func(text string) error
	Now      func() time.Time
}

// DefaultEnv returns an Env bound to the real terminal, disk and clipboard
func DefaultEnv() *Env {
	return &Env{
		Fs:       afero.NewOsFs(),
		In:       os.Stdin,
		Out:      os.Stdout,
		Err:      os.Stderr,
		CopyText: clipboard.WriteAll,
		Now:      time.Now,
	}
}

type app struct {
	env     *Env
	dataDir string
	in      *bufio.Reader
}

// Execute runs the command line and returns the process exit code
func Execute(version string, args []string) int {
	env := DefaultEnv()
	cmd := NewRootCmd(env, version)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fail(env.Err, describeError(err))
		return 1
	}
	return 0
}

// NewRootCmd builds the command tree around env
func NewRootCmd(env *Env, version string) *cobra.Command {
	a := &app{env: env, in: bufio.NewReader(env.In)}

	rootCmd := &cobra.Command{
		Use:           "exptrack",
		Short:         "Track food expiration dates",
		Long:          "exptrack manages the same item list as the Expiration Tracker window.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetIn(env.In)
	rootCmd.SetOut(env.Out)
	rootCmd.SetErr(env.Err)

	rootCmd.PersistentFlags().StringVarP(&a.dataDir, "data-dir", "d", "", "data directory (default "+platform.DefaultDataDir()+")")

	rootCmd.AddCommand(a.newListCmd())
	rootCmd.AddCommand(a.newAddCmd())
	rootCmd.AddCommand(a.newEditCmd())
	rootCmd.AddCommand(a.newRemoveCmd())
	rootCmd.AddCommand(a.newPruneCmd())
	rootCmd.AddCommand(a.newCopyCmd())
	rootCmd.AddCommand(a.newDefaultsCmd())

	return rootCmd
}

func (a *app) files() platform.DataFiles {
	dir := a.dataDir
	if dir == "" {
		dir = platform.DefaultDataDir()
	}
	return platform.NewDataFiles(dir)
}

func (a *app) shelfLife() (config.ShelfLife, error) {
	return config.LoadShelfLife(a.env.Fs, a.files().ShelfLife)
}

// openStore loads the item file from the data directory
func (a *app) openStore() (*store.Store, error) {
	shelfLife, err := a.shelfLife()
	if err != nil {
		return nil, err
	}
	backend := store.NewFileBackend(a.env.Fs, a.files().Items)
	return store.New(backend, shelfLife, store.WithClock(a.env.Now))
}

// confirm asks a yes/no question; anything but y or yes is a no
func (a *app) confirm(question string) bool {
	fmt.Fprintf(a.env.Out, "%s [y/N]: ", question)
	answer, err := a.in.ReadString('\n')
	if err != nil && answer == "" {
		fmt.Fprintln(a.env.Out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// describeError turns store and parser errors into one-line messages
func describeError(err error) string {
	switch {
	case errors.Is(err, store.ErrPersistence):
		return "could not save items, nothing was changed: " + err.Error()
	case errors.Is(err, store.ErrMissingExpiration):
		return "no default shelf life for this item, pass an expiration (7d, 12h, 2w, inf, or YYYY-MM-DD HH:MM:SS)"
	case errors.Is(err, expiry.ErrInvalidFormat):
		return err.Error() + " (use 7d, 12h, 2w, 1m, 1y, inf, or YYYY-MM-DD HH:MM:SS)"
	default:
		return err.Error()
	}
}
