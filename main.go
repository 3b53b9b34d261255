/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/inkwell-blog/inkwell/cmd"

func main() {
	cmd.Execute()
}
