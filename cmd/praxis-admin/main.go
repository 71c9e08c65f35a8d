package main

import (
	"github.com/praxisgrc/praxis/cmd/praxis-admin/cli"
)

func main() {
	cli.Execute()
}
