// Command emoplot renders emotion analysis results as radar and line charts
// and serves the chart builders as MCP tools.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logrus.WithField(logrus.ErrorKey, err).Error("emoplot failed")
		os.Exit(1)
	}
}
