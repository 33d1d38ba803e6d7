package util

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/cfdops/caseflow/pkg/logger"
	"github.com/cfdops/caseflow/pkg/system"
	"github.com/cfdops/caseflow/pkg/telemetry"
)

// ShutdownSignals are the signals that cancel a running command's context.
var ShutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

type contextKey struct {
	name string
}

var (
	spanKey    = contextKey{name: "context key for storing the root span"}
	cleanupKey = contextKey{name: "context key for storing the cleanup manager"}
)

// InstallRunHooks wires logging, telemetry and a root span around every
// command under root. The span is named after the command path, e.g.
// "casewatch.mesh-status".
func InstallRunHooks(root *cobra.Command, loggingMode *logger.LogMode) {
	root.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		logger.ConfigureLogging(*loggingMode)
		telemetry.SetupFromEnvs()

		cm := system.NewCleanupManager()
		cm.RegisterCallback(telemetry.Cleanup)
		ctx = context.WithValue(ctx, cleanupKey, cm)

		var names []string
		for c := cmd; c != nil; c = c.Parent() {
			names = append([]string{c.Name()}, names...)
		}
		name := strings.Join(names, ".")
		ctx, span := telemetry.NewRootSpan(ctx, telemetry.GetTracer(), name)
		ctx = context.WithValue(ctx, spanKey, span)

		cmd.SetContext(ctx)
	}
	root.PersistentPostRun = func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		if span, ok := ctx.Value(spanKey).(trace.Span); ok {
			span.End()
		}
		if cm, ok := ctx.Value(cleanupKey).(*system.CleanupManager); ok {
			cm.Cleanup(ctx)
		}
	}
}

// Execute runs the root command with a signal-cancelled context so jobs in
// flight of submission stop cleanly on ctrl+c. Any returned error goes
// through Fatal.
func Execute(root *cobra.Command) {
	ctx, cancel := signal.NotifyContext(context.Background(), ShutdownSignals...)
	defer cancel()
	root.SetContext(ctx)

	// stdout for cmd.Print output so e.g. ID=$(caseflow --mesh-only) works
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	if err := root.Execute(); err != nil {
		Fatal(root, err, 1)
	}
}
