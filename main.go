package main

import "github.com/sambabib/depwatch/cmd"

func main() {
	cmd.Execute()
}
