// Command watfs-server exports a directory tree over the WatFS protocol.
// It performs every RPC as a direct syscall under the configured root and
// keeps no state across requests beyond that root path.
package main

import (
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/chowes/WatFS/internal/logging"
	"github.com/chowes/WatFS/internal/metrics"
	"github.com/chowes/WatFS/internal/server"
	"github.com/chowes/WatFS/internal/wireproto"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
)

var (
	logLevel    string
	metricsAddr string
)

func main() {
	root := &cobra.Command{
		Use:   "watfs-server <rootdir> <addr:port>",
		Short: "Serve a directory tree over the WatFS protocol",
		Args:  cobra.ExactArgs(2),
		RunE:  runServe,
	}
	root.Flags().StringVar(&logLevel, "log-level", "info", "log level (info or debug)")
	root.Flags().StringVar(&metricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on; empty disables")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	logging.Configure(logLevel == "debug")
	log := logging.Component("server")

	rootDir, addr := args[0], args[1]

	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector(), prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	srv, err := server.New(rootDir, m)
	if err != nil {
		return fmt.Errorf("starting server: %w", err)
	}

	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(metricsAddr, mux); err != nil {
				log.WithError(err).Error("metrics listener exited")
			}
		}()
		log.WithField("addr", metricsAddr).Info("serving metrics")
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}

	gs := grpc.NewServer()
	wireproto.RegisterWatFSServer(gs, srv)

	log.WithField("addr", addr).WithField("root", rootDir).Info("watfs-server listening")
	return gs.Serve(lis)
}
