package main

import "github.com/ANOOPSONKRIYA/vlsi-web/internal/cli"

func main() {
	cli.Execute()
}
