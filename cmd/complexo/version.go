package main

import "fmt"

// version is set to the release tag at build time via
// -ldflags "-X main.version=...". It defaults to "dev" for local
// builds.
var version = "dev"

func runVersion() {
	fmt.Println("complexo", version)
}
