package main

import "github.com/marketref/candle-admin/cmd"

func main() {
	cmd.Execute()
}
