// main is the entry point for the teamdisc CLI.
package main

import (
	"github.com/huangsam/teamdisc/cmd"
	"github.com/huangsam/teamdisc/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		_ = cmd.StopProfiling()
		contract.LogFatal("Cannot run teamdisc", err)
	}
	if err := cmd.StopProfiling(); err != nil {
		contract.LogWarn("Failed to stop profiling", err)
	}
}
