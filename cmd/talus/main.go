/*
Copyright © 2026 the talus authors.
This file is part of talus.

talus is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

talus is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.
*/

// Command talus is a command-line interface for the talus mass-flow solver.
package main

import (
	"fmt"
	"os"

	"github.com/talusflow/talus/talusutil"
)

func main() {
	if err := talusutil.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
