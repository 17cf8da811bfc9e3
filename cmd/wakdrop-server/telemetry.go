package main

import (
	"context"

	"github.com/mmangon/wakdrop-backend/lib/serviceutil"
	"github.com/mmangon/wakdrop-backend/lib/telemetry"
)

func InitTelemetry(ctx context.Context, verbose bool) {
	err := telemetry.SetupFromEnv(ctx, "wakdrop-server")
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	telemetry.InstrumentPerfStats(ctx)
	telemetry.InitSlog(verbose)
}
