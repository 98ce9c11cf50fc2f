package main

import (
	"SoloPong/logger"
)

func main() {
	logger.Log.Init()
	start()
}
