package main

import "github.com/shoji1021/classroom/internal/cli"

func main() {
	cli.Execute()
}
