package main

import "uniform-manager/cmd"

func main() {
	cmd.Execute()
}
