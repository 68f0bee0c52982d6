// Package jsdom implements the dom interfaces over syscall/js for the wasm build.
// Outside GOOS=js the package is empty.
package jsdom
