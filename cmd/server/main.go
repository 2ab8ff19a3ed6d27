package main

import (
	"os"

	_ "github.com/practice-partner/backend/docs" // generated swagger docs
)

// @title           Interview Practice Partner API
// @version         1.0
// @description     Mock interview chat: answer role-specific questions one at a time and get a verdict, feedback and a correction for each.

// @host      localhost:8000
// @BasePath  /

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
