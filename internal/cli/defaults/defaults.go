// Package defaults provides embedded files written by `cotprompt init`.
package defaults

import _ "embed"

//go:embed request.example.yaml
var exampleRequest []byte

// ExampleRequest returns a sample render request file.
func ExampleRequest() []byte {
	out := make([]byte, len(exampleRequest))
	copy(out, exampleRequest)
	return out
}
