//go:build mage

// Package main contains Mage build targets for sitegen developer tooling.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

const (
	binDir  = "bin"
	binName = "sitegen"
	cmdPkg  = "./cmd/sitegen"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	cmd := exec.Command("go", "build", "-o", out, cmdPkg)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the full test suite.
func Test() error {
	cmd := exec.Command("go", "test", "./...")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Update regenerates all derived site content: the essays page in place,
// and the publications list into _includes/publications.html.
func Update() error {
	mg.Deps(Build)

	bin := filepath.Join(binDir, binName)

	essays := exec.Command(bin, "essays")
	essays.Stdout = os.Stdout
	essays.Stderr = os.Stderr
	if err := essays.Run(); err != nil {
		return fmt.Errorf("essays: %w", err)
	}

	pubs := exec.Command(bin, "publications")
	out, err := os.Create(filepath.Join("_includes", "publications.html"))
	if err != nil {
		return fmt.Errorf("creating publications output: %w", err)
	}
	defer out.Close()
	pubs.Stdout = out
	pubs.Stderr = os.Stderr
	if err := pubs.Run(); err != nil {
		return fmt.Errorf("publications: %w", err)
	}

	fmt.Println("Site content updated.")
	return nil
}
