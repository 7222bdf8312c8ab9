// Command apiprobe is a quick connectivity check against a storefront
// deployment: it hits the catalog and init-data endpoints once each with a
// bounded timeout and prints what came back. It records nothing and makes no
// assertions; use the main harness for that.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chic-attire/storefront-contract-tests/client"
	"github.com/chic-attire/storefront-contract-tests/framework"
)

const probeTimeout = time.Second * 30
const bodyPreviewLimit = 200

func main() {
	var baseURL string
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&baseURL, "url", "", "base URL of the storefront deployment (without /api)")
	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if baseURL == "" {
		fmt.Fprintln(os.Stderr, "-url is required")
		os.Exit(1)
	}

	session, err := client.NewSession(baseURL, probeTimeout, framework.NullLogger())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("Probing API endpoints...")

	fmt.Println("1. GET /api/products")
	probe(func(ctx context.Context) (*client.Response, error) {
		return session.Get(ctx, "/products")
	})

	fmt.Println("2. POST /api/init-data")
	probe(func(ctx context.Context) (*client.Response, error) {
		return session.PostJSON(ctx, "/init-data", nil)
	})
}

func probe(call func(context.Context) (*client.Response, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	resp, err := call(ctx)
	if err != nil {
		fmt.Printf("   Error: %s\n", err)
		return
	}
	fmt.Printf("   Status: %d\n", resp.StatusCode)
	fmt.Printf("   Response: %s\n", resp.TruncatedBody(bodyPreviewLimit))
}
