package main

import "github.com/cwbudde/algo-denoise/internal/cli"

func main() {
	cli.Execute()
}
