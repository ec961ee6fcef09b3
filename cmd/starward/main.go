package main

import "github.com/litescript/starward/internal/cli"

func main() {
	cli.Execute()
}
