package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chic-attire/storefront-contract-tests/framework"
)

type commandParams struct {
	baseURL        string
	configFile     string
	requestTimeout time.Duration
	filters        framework.RegexFilters
	debug          bool
	debugAll       bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.baseURL, "url", "", "base URL of the storefront deployment (without /api)")
	fs.StringVar(&c.configFile, "config", "", "path to optional YAML config file")
	fs.DurationVar(&c.requestTimeout, "timeout", 0, "timeout for each HTTP request")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select stages to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select stages not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed stages")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all stages")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}
