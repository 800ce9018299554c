package main

import "github.com/ArnaudCalmettes/whitelogo/cmd"

func main() {
	cmd.Execute()
}
