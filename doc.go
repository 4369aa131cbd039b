// Package envfile loads, mutates and serializes KEY=VALUE configuration
// files with typed values and process-environment fallback.
//
// Quick Start:
//
//	env, err := envfile.Load(".env", envfile.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if v, ok := env.Query("BUILD_NUMBER"); ok {
//	    n, _ := v.Int() // types are inferred from the literal text
//	    fmt.Println(n)
//	}
//
// Lookups consult the file's store first and fall back to the process
// environment; Options.Strategy reverses or restricts that order.
// Member("apiKey") resolves the key "API_KEY".
//
// See example_test.go and README.md for detailed usage.
package envfile
