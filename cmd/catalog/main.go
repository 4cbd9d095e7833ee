package main

import "planets-catalog/internal/cli"

func main() {
	cli.Execute()
}
