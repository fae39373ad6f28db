package main

import "github.com/StinkyLord/netlist-bom/cmd"

func main() {
	cmd.Execute()
}
