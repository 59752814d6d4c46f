// Command watfs-client mounts a remote WatFS server at a local
// mountpoint using bazil.org/fuse.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bazil.org/fuse"
	fusefs "bazil.org/fuse/fs"
	"github.com/chowes/WatFS/internal/client"
	"github.com/chowes/WatFS/internal/fsnode"
	"github.com/chowes/WatFS/internal/logging"
	"github.com/chowes/WatFS/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var (
	serverAddr     string
	debug          bool
	singleThreaded bool
)

func main() {
	root := &cobra.Command{
		Use:   "watfs-client <mountpoint>",
		Short: "Mount a WatFS server at a local path",
		Args:  cobra.ExactArgs(1),
		RunE:  runMount,
	}
	root.Flags().StringVar(&serverAddr, "server", "0.0.0.0:50051", "address of the watfs-server to connect to")
	root.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	root.Flags().BoolVarP(&singleThreaded, "single-threaded", "s", false, "serialize all filesystem requests")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runMount(cmd *cobra.Command, args []string) error {
	logging.Configure(debug)
	log := logging.Component("client")
	mountpoint := args[0]

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	handle, err := client.Dial(ctx, serverAddr, m)
	if err != nil {
		return fmt.Errorf("dialing %s: %w", serverAddr, err)
	}
	defer handle.Close()

	c, err := fuse.Mount(
		mountpoint,
		fuse.FSName("watfs"),
		fuse.Subtype("watfs"),
		fuse.VolumeName(serverAddr),
	)
	if err != nil {
		return fmt.Errorf("mounting %s: %w", mountpoint, err)
	}
	defer c.Close()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		log.Info("unmounting")
		_ = fuse.Unmount(mountpoint)
	}()

	log.WithField("mountpoint", mountpoint).WithField("server", serverAddr).Info("mounted")

	filesys := fsnode.New(handle, singleThreaded)
	if err := fusefs.Serve(c, filesys); err != nil {
		return fmt.Errorf("serving mount: %w", err)
	}

	<-c.Ready
	return c.MountError
}
