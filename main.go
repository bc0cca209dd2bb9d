package main

import "costsite/cmd"

func main() {
	cmd.Execute()
}
