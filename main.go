package main

import (
	"fmt"
	"os"

	"github.com/chic-attire/storefront-contract-tests/framework"
	"github.com/chic-attire/storefront-contract-tests/storetests"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	var cfg fileConfig
	if params.configFile != "" {
		var err error
		cfg, err = loadConfigFile(params.configFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	baseURL := resolveBaseURL(params.baseURL, cfg)
	timeout := params.requestTimeout
	if timeout == 0 {
		timeout = cfg.RequestTimeout
	}
	user := storetests.NewTestUser(cfg.UserName)

	fmt.Println("Starting storefront API contract tests")
	fmt.Printf("Base URL: %s\n", baseURL)
	fmt.Printf("Test user: %s\n", user.Email)
	fmt.Println()

	framework.PrintFilterDescription(params.filters)

	checkLogger := &consoleCheckLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results, err := storetests.RunTestSuite(storetests.SuiteConfig{
		BaseURL:        baseURL,
		User:           user,
		RequestTimeout: timeout,
		Filter:         params.filters.AsFilter,
		CheckLogger:    checkLogger,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println()
	framework.PrintSummary(os.Stdout, framework.Summarize(results.All(), framework.DefaultCategories))
	if !results.OK() {
		os.Exit(1)
	}
}
