package main

import "github.com/zubax/updater-dist/cmd/updater-dist/cmd"

func main() {
	cmd.Execute()
}
