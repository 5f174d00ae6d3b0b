package main

import "github.com/classver/classver/internal/cli"

func main() {
	cli.Execute()
}
