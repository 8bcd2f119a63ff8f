package cli

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/lockbox/internal/config"
	"github.com/mrz1836/lockbox/internal/errors"
	"github.com/mrz1836/lockbox/internal/flock"
)

// errLockBusy reports that at least one probed file was locked by
// another process.
var errLockBusy = stderrors.New("one or more files are locked")

// AddLockCommand adds the lock command with subcommands to the root command.
func AddLockCommand(rootCmd *cobra.Command) {
	lockCmd := &cobra.Command{
		Use:   "lock",
		Short: "Probe and hold advisory file locks",
	}

	lockCmd.AddCommand(newLockTryCmd())
	lockCmd.AddCommand(newLockHoldCmd())

	rootCmd.AddCommand(lockCmd)
}

// lockProbe is the result of a single non-blocking lock attempt.
type lockProbe struct {
	Path   string `json:"path" yaml:"path"`
	Status string `json:"status" yaml:"status"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

const (
	probeFree  = "free"
	probeBusy  = "busy"
	probeError = "error"
)

func newLockTryCmd() *cobra.Command {
	var shared bool

	cmd := &cobra.Command{
		Use:   "try <file>...",
		Short: "Probe whether files can be locked right now",
		Long: `Attempt a non-blocking advisory lock on each file and report the
outcome. The lock is released immediately after a successful probe.

By default the probe opens files read-write and takes the exclusive
lock that mode resolves to; --shared opens read-only and takes the
shared lock instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := "w"
			openFlags := os.O_RDWR
			if shared {
				mode = "r"
				openFlags = os.O_RDONLY
			}
			flags, err := flock.DefaultFlags(mode)
			if err != nil {
				return err
			}
			flags |= flock.NonBlocking

			locker := flock.NewWithLogger(GetLogger())
			probes := make([]lockProbe, len(args))

			var g errgroup.Group
			for i, path := range args {
				g.Go(func() error {
					probes[i] = probeLock(locker, path, openFlags, flags)
					return nil
				})
			}
			_ = g.Wait()

			if err := writeProbes(cmd, probes); err != nil {
				return err
			}
			for _, probe := range probes {
				if probe.Status != probeFree {
					return errLockBusy
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&shared, "shared", false, "probe with a shared (read) lock")
	return cmd
}

// probeLock attempts one non-blocking lock and classifies the outcome.
func probeLock(locker *flock.Locker, path string, openFlags int, flags flock.Flag) lockProbe {
	f, err := os.OpenFile(path, openFlags, 0) // #nosec G304 -- path is a user-supplied CLI argument
	if err != nil {
		return lockProbe{Path: path, Status: probeError, Error: err.Error()}
	}
	defer func() { _ = f.Close() }()

	if err := locker.Lock(f, flags); err != nil {
		if stderrors.Is(err, errors.ErrLockFailed) {
			return lockProbe{Path: path, Status: probeBusy}
		}
		return lockProbe{Path: path, Status: probeError, Error: err.Error()}
	}
	if err := locker.Unlock(f); err != nil {
		return lockProbe{Path: path, Status: probeError, Error: err.Error()}
	}
	return lockProbe{Path: path, Status: probeFree}
}

// writeProbes renders probe results in the selected output format.
func writeProbes(cmd *cobra.Command, probes []lockProbe) error {
	out := cmd.OutOrStdout()
	switch outputFormat(cmd) {
	case OutputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(probes)
	case OutputYAML:
		return yaml.NewEncoder(out).Encode(probes)
	default:
		for _, probe := range probes {
			if probe.Error != "" {
				fmt.Fprintf(out, "%s: %s (%s)\n", probe.Path, probe.Status, probe.Error)
				continue
			}
			fmt.Fprintf(out, "%s: %s\n", probe.Path, probe.Status)
		}
		return nil
	}
}

func newLockHoldCmd() *cobra.Command {
	var (
		shared      bool
		nonBlocking bool
	)

	cmd := &cobra.Command{
		Use:   "hold <file>",
		Short: "Hold an advisory lock until interrupted",
		Long: `Acquire an advisory lock on the file and hold it until the process
receives SIGINT or SIGTERM, then release it. The file is created when
it does not exist.

The call waits for the lock unless --non-blocking is set (or
lock.non_blocking is enabled in the configuration), in which case an
unavailable lock fails immediately.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}

			mode := "w"
			if shared {
				mode = "r"
			}
			flags, err := flock.DefaultFlags(mode)
			if err != nil {
				return err
			}
			if nonBlocking || cfg.Lock.NonBlocking {
				flags |= flock.NonBlocking
			}

			f, err := os.OpenFile(args[0], os.O_RDWR|os.O_CREATE, 0o600) // #nosec G304 -- path is a user-supplied CLI argument
			if err != nil {
				return errors.Wrapf(err, "failed to open %s", args[0])
			}
			defer func() { _ = f.Close() }()

			logger := GetLogger()
			locker := flock.NewWithLogger(logger)
			if err := locker.Lock(f, flags); err != nil {
				return err
			}
			logger.Info().
				Str("file", args[0]).
				Stringer("flags", flags).
				Msg("lock held; send SIGINT or SIGTERM to release")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()

			logger.Info().Str("file", args[0]).Msg("releasing lock")
			return locker.Unlock(f)
		},
	}

	cmd.Flags().BoolVar(&shared, "shared", false, "hold a shared (read) lock")
	cmd.Flags().BoolVar(&nonBlocking, "non-blocking", false, "fail immediately when the lock is unavailable")
	return cmd
}
