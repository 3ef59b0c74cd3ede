package main

import "github.com/modcn/modcn/internal/cli"

func main() {
	cli.Execute()
}
