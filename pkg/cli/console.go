package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ASTRELLECT/SynVotra/pkg/inactivity"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Hold the session open under the inactivity watchdog",
	Long: `Hold the session open under the inactivity watchdog.

The console is the equivalent of an open portal page: every input line
counts as user activity and resets the idle timer. When the idle
threshold passes without input, the session is logged out and the
console exits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		if !a.store.IsValid() {
			return fmt.Errorf("no active session, login first")
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		monitor := inactivity.NewMonitor(a.cfg.IdleThreshold, a.cfg.TickInterval, func() {
			fmt.Println("\nSession expired due to inactivity")
			if err := a.manager.Logout(ctx); err == nil {
				cancel()
			}
		})
		monitor.Start(ctx)
		defer monitor.Stop()

		fmt.Printf("Console open, idle timeout %s. Press enter to stay active, Ctrl-D to leave.\n", a.cfg.IdleThreshold)

		lines := make(chan string)
		go func() {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				lines <- scanner.Text()
			}
			close(lines)
		}()

		for {
			select {
			case _, ok := <-lines:
				if !ok {
					return nil
				}
				monitor.Activity()
			case <-ctx.Done():
				return nil
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}
