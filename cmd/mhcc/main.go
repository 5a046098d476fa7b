package main

import "github.com/Daddy-Tine/MHCreditCheck/cmd/mhcc/cmd"

func main() {
	cmd.Execute()
}
