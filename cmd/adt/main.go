// cmd/adt/main.go
package main

import "github.com/pavanmanishd/adt/cmd/adt/cmd"

func main() {
	cmd.Execute()
}
