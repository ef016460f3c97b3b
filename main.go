package main

import (
	"fmt"
	"os"

	"github.com/vcokltfre/viper/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "viper: %v\n", err)
		os.Exit(1)
	}
}
