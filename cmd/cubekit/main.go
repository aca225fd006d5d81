// Cubekit CLI - paint, validate, transform and solve Rubik's cube configurations.
package main

import (
	"github.com/cubekit/cubekit/internal/cli"
)

func main() {
	cli.Execute()
}
