/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/daffahilmyf/dictators-seed/cmd"

func main() {
	cmd.Execute()
}
