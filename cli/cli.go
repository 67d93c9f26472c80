package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sagarika1109/Network-Security-Scanner/api"
	"github.com/Sagarika1109/Network-Security-Scanner/output"
	"github.com/Sagarika1109/Network-Security-Scanner/scanner"
)

type scanFlags struct {
	startPort  int
	endPort    int
	portSpec   string
	threads    int
	timeoutSec float64
	banner     bool
	outputPath string
	verbose    bool
}

// Run builds the command tree and executes it.
func Run() {
	var flags scanFlags

	rootCmd := &cobra.Command{
		Use:   "netscan [target]",
		Short: "TCP port scanner with optional banner grabbing",
		Long: "Probes a target host across a set of TCP ports, identifies well-known\n" +
			"services, optionally grabs banners, and writes a CSV or JSON report.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runScan(args[0], flags)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().IntVar(&flags.startPort, "start", 1, "Start port")
	rootCmd.Flags().IntVar(&flags.endPort, "end", 1024, "End port")
	rootCmd.Flags().StringVar(&flags.portSpec, "ports", "", "Comma-separated ports or ranges (e.g. 22,80,8000-8100); overrides --start/--end")
	rootCmd.Flags().IntVar(&flags.threads, "threads", 100, "Number of concurrent workers")
	rootCmd.Flags().Float64Var(&flags.timeoutSec, "timeout", 0.5, "Per-port timeout in seconds")
	rootCmd.Flags().BoolVar(&flags.banner, "banner", false, "Attempt to grab service banners")
	rootCmd.Flags().StringVar(&flags.outputPath, "output", "", "Save report to file (.csv or .json)")
	rootCmd.Flags().BoolVar(&flags.verbose, "verbose", false, "Verbose progress output")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the asynchronous scan API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return api.Run()
		},
		SilenceUsage: true,
	}
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runScan(target string, flags scanFlags) error {
	ports := scanner.ParsePorts(flags.portSpec, flags.startPort, flags.endPort)

	opts := scanner.Options{
		Ports:   ports,
		Workers: flags.threads,
		Timeout: time.Duration(flags.timeoutSec * float64(time.Second)),
		Banner:  flags.banner,
	}
	if flags.verbose {
		fmt.Printf("Scanning %s | Ports: %d | Threads: %d | Timeout: %.2fs | Banner: %v\n\n",
			target, len(ports), flags.threads, flags.timeoutSec, flags.banner)
		opts.Progress = func(scanned, total int) {
			fmt.Printf("Progress: %d/%d ports scanned\n", scanned, total)
		}
	}

	report, err := scanner.Run(target, opts)
	if err != nil {
		var resErr *scanner.ResolutionError
		if errors.As(err, &resErr) {
			// Resolution failure ends the run without a report; it is not
			// a usage error, so exit cleanly after printing it.
			fmt.Println(resErr.Error())
			return nil
		}
		return err
	}

	printReport(report)

	if flags.outputPath != "" {
		if err := output.SaveReport(report.OpenPorts, flags.outputPath); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
		fmt.Printf("Report saved to %s\n", flags.outputPath)
	}
	return nil
}

func printReport(report *scanner.Report) {
	fmt.Printf("\nScan complete for %s (%s)\n", report.Target, report.IP)
	fmt.Printf("Duration: %.2fs | Open ports: %d\n\n", report.DurationSeconds, len(report.OpenPorts))

	for _, p := range report.OpenPorts {
		line := fmt.Sprintf("[OPEN] Port %d -> %s", p.Port, p.Service)
		if p.Banner != "" {
			banner := p.Banner
			if len(banner) > 80 {
				banner = banner[:80] + "..."
			}
			line += " | Banner: " + banner
		}
		fmt.Println(line)
	}
}
