/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package main

import (
	"github.com/josephgoksu/sejong/cmd"
	"github.com/josephgoksu/sejong/internal/logger"
)

func main() {
	defer logger.HandlePanic()
	cmd.Execute()
}
