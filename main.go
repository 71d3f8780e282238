package main

import "github.com/papapumpkin/almanac/cmd"

func main() {
	cmd.Execute()
}
