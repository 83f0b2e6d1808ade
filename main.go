package main

import "botc-assets/cmd"

func main() {
	cmd.Execute()
}
