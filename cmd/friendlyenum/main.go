package main

import "friendlyenum/internal/cli"

func main() {
	cli.Execute()
}
