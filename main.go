package main

import "srd-mirror/cmd"

func main() {
	cmd.Execute()
}
