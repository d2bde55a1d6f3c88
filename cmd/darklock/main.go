package main

import "github.com/Design-Arena-Gens/darklock/internal/cli"

func main() {
	cli.Execute()
}
