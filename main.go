package main

import "github.com/mauriciopaint/backoffice/cmd"

func main() {
	cmd.Execute()
}
