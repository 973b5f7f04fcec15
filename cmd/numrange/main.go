package main

import "github.com/mydehq/numrange/internal/cli"

func main() {
	cli.Execute()
}
