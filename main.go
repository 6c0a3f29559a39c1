package main

import "photo-manager/cmd"

func main() {
	cmd.Execute()
}
