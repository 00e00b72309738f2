package main

import "github.com/josephlewis42/acmshell/cmd"

func main() {
	cmd.Execute()
}
