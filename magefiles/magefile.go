//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified.
var Default = Test

// Build compiles the geometrize command into bin/.
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/geometrize", "./cmd/geometrize")
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Bench runs the benchmarks of the root package.
func Bench() error {
	return sh.RunV("go", "test", "-run", "^$", "-bench", ".", "-benchmem", ".")
}

// Vet runs go vet over every package.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs Vet and Test.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Demo builds the command and renders a 16-bit coverage heatmap.
func Demo() error {
	mg.Deps(Build)
	return sh.RunV("bin/geometrize", "-shapes", "500", "-depth", "16", "-output", "coverage.tiff")
}
