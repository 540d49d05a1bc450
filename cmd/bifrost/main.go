/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/ssargent/bifrost/cmd/bifrost/cmd"

func main() {
	cmd.Execute()
}
