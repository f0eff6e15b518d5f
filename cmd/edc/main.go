package main

import "github.com/sqpp/edc-golang/cmd/edc/cmd"

func main() {
	cmd.Execute()
}
