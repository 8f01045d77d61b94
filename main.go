package main

import "github.com/KaramelBytes/legends-cli/cmd"

func main() {
	cmd.Execute()
}
