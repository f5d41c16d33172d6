package main

import "github.com/vylia99/contactbook/internal/cli"

func main() {
	cli.Execute()
}
