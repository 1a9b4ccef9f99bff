package main

import (
	"context"
	"elementdata/cmd/elementdata/commands"
	"elementdata/lib/serviceutil"
	"elementdata/lib/telemetry"
)

func main() {
	telemetry.InitSlog(false)
	telemetry.SetupFromEnv(context.Background(), "elementdata")
	commands.ExecuteContext(serviceutil.SignalContext())
}
