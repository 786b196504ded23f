package main

import (
	stderrors "errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/joho/godotenv"

	"github.com/siyuan-infoblox/lensort/pkg/cmd"
	"github.com/siyuan-infoblox/lensort/pkg/linter"
)

func main() {
	// .env may set LENSORT_CONFIG; a missing file is fine
	_ = godotenv.Load()

	var buildVersion string
	if info, ok := debug.ReadBuildInfo(); ok {
		buildVersion = info.Main.Version
	}
	if err := cmd.Execute(buildVersion); err != nil {
		if !stderrors.Is(err, linter.ErrProblemsFound) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
