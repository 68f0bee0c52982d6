//go:build !(js && wasm)

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "erp-web runs in the browser; build it with GOOS=js GOARCH=wasm")
	os.Exit(1) //nolint:forbidigo // the binary is meaningless outside the browser
}
