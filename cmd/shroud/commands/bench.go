package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"shroud/internal/daemon"
	"shroud/internal/dgram"
)

func benchCmd() *cobra.Command {
	var (
		size      int
		count     int
		daemonize bool
		out       string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure encryption throughput over synthetic datagrams",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := newConfig()
			a, err := wire(cfg)
			if err != nil {
				return err
			}
			defer a.Wipe()

			if daemonize {
				if out == "" {
					return fmt.Errorf("--daemonize requires --out, stdout is detached")
				}
				if err := daemon.Daemonize(); err != nil {
					return err
				}
			}

			share := count / cfg.Parallel
			if share == 0 {
				share = count
			}

			start := time.Now()
			g := new(errgroup.Group)
			g.SetLimit(cfg.Parallel)
			done := 0
			for done < count {
				n := share
				if done+n > count {
					n = count - done
				}
				done += n
				g.Go(func() error {
					buf := dgram.FromBytes(make([]byte, size), dgram.IVLen(a.Suite))
					for i := 0; i < n; i++ {
						if err := buf.Reset(size); err != nil {
							return err
						}
						if err := dgram.Encrypt(a.Suite, a.Key, buf); err != nil {
							return err
						}
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			elapsed := time.Since(start)

			report := fmt.Sprintf("%s: %d datagrams of %d bytes in %v (%.1f MB/s)\n",
				a.Suite.Name, count, size, elapsed.Round(time.Millisecond),
				float64(count)*float64(size)/elapsed.Seconds()/(1<<20))
			if out != "" {
				return os.WriteFile(out, []byte(report), 0o644)
			}
			fmt.Print(report)
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 1400, "datagram payload size in bytes")
	cmd.Flags().IntVar(&count, "count", 100000, "number of datagrams to encrypt")
	cmd.Flags().BoolVarP(&daemonize, "daemonize", "d", false, "detach and run in the background")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the report to a file instead of stdout")

	return cmd
}
