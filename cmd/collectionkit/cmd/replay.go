package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/go-drift/collectionkit/cmd/collectionkit/internal/script"
	"github.com/go-drift/collectionkit/pkg/metrics"
	"github.com/go-drift/collectionkit/pkg/notify"
)

func replayCmd() *cobra.Command {
	var showMetrics bool
	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Apply a mutation script and print every notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}

			ch := notify.NewChannel("replay")
			reg := prometheus.NewRegistry()
			if showMetrics {
				m := metrics.New(reg)
				sub := m.Observe(ch)
				defer sub.Cancel()
			}

			out := cmd.OutOrStdout()
			runner := script.NewRunner(out, ch, resolved.Layout, slog.Default())
			if err := runner.Run(s); err != nil {
				return err
			}
			if showMetrics {
				return writeCounters(out, reg)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "print notification counters after the run")
	return cmd
}

// writeCounters prints every counter sample in reg, one per line, sorted.
func writeCounters(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	var lines []string
	for _, f := range families {
		for _, m := range f.GetMetric() {
			c := m.GetCounter()
			if c == nil {
				continue
			}
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", f.GetName(), strings.Join(labels, ","), c.GetValue()))
		}
	}
	sort.Strings(lines)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
