package main

import (
	"fmt"
	"os"

	"github.com/ncruces/zenity"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if showDialog {
			_ = zenity.Error(err.Error(), zenity.Title("Fluid Bubble"), zenity.ErrorIcon)
		}
		os.Exit(1)
	}
}
