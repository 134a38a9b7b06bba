package main

import "github.com/metlab/inventory/cmd"

func main() {
	cmd.Execute()
}
