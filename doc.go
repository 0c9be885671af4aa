// Package stemsplit provides a Go SDK for the StemSplit API.
//
// StemSplit is an audio source-separation service: it takes one audio
// file and splits it into isolated stems (vocals, drums, bass, ...).
// This SDK wraps the service's HTTP API with an idiomatic Go interface:
// validated inputs, context-aware requests, and a single typed error.
//
// # Installation
//
// To install the SDK, use go get:
//
//	go get github.com/stemsplit/stemsplit-go
//
// # Quick Start
//
// Create a client and separate a file:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    stemsplit "github.com/stemsplit/stemsplit-go"
//	)
//
//	func main() {
//	    // An empty base URL selects the public deployment.
//	    client, err := stemsplit.NewClient("")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    result, err := client.Separate(context.Background(),
//	        stemsplit.FileFromPath("song.mp3"),
//	        &stemsplit.SeparationOptions{Stems: stemsplit.FourStems},
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("job %s produced %d stems\n", result.JobID, len(result.OutputFiles))
//	}
//
// # Client Configuration
//
// The client can be configured using functional options:
//
//	client, err := stemsplit.NewClient("https://stemsplit.example.com",
//	    stemsplit.WithAPIKey(os.Getenv("STEMSPLIT_API_KEY")),
//	    stemsplit.WithTimeout(10*time.Minute),
//	    stemsplit.WithHTTPClient(customHTTPClient),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// Every failure surfaces as a single [*Error] carrying a stable [Kind]:
//
//	result, err := client.Separate(ctx, input, nil)
//	if err != nil {
//	    var apiErr *stemsplit.Error
//	    if errors.As(err, &apiErr) {
//	        switch apiErr.Kind {
//	        case stemsplit.KindTimeout:
//	            // Retry with a longer timeout
//	        case stemsplit.KindAPIError:
//	            // Inspect apiErr.Status
//	        }
//	    }
//	}
//
// Validation failures (empty inputs, path-traversal attempts in job ids
// or filenames) are rejected with [KindInvalidArgument] before any
// network I/O is attempted.
//
// # Retries
//
// The SDK performs no internal retries. Every failure is surfaced to the
// caller exactly once; retry policy is the caller's responsibility.
//
// # Thread Safety
//
// The [Client] is safe for concurrent use by multiple goroutines.
// Configuration is read-only after construction and each method call
// owns its own timer and cancellation.
//
// # API Version Compatibility
//
// This SDK version targets StemSplit API v1.0.0. Use [Client.Health] to
// read the server version at runtime and [CheckCompatibility] to match
// it against the supported range.
package stemsplit
