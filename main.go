package main

import "yastm-generator/cmd"

func main() {
	cmd.Execute()
}
