package main

import "github.com/nfrund/goby-reset/cmd/server/cmd"

func main() {
	cmd.Execute()
}
