package main

import (
	"fmt"
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"cxxc/cmd/cxxc-dump/cmd"
)

// TestMain registers cxxc-dump as an in-process "binary" testscript can
// invoke, mirroring how the teacher drives its own cmd/dwscript CLI
// end-to-end in its test suite.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"cxxc-dump": runCxxcDump,
	}))
}

func runCxxcDump() int {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func TestCLIScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}
