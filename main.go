package main

import "github.com/TruWeaveTrader/alpaca-mcp/cmd"

func main() {
	cmd.Execute()
}
