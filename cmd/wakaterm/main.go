// Package main is the entry point for the wakaterm CLI.
package main

import "github.com/QinCai-rui/WakaTerm-NG/internal/app"

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=2.1.0"
var version = "dev"

func main() {
	app.SetVersion(version)
	app.Execute()
}
