//go:build mage

// Package main contains Mage build targets for transfer-engine developer
// tooling.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
)

// projectDirs lists the working directories the engine expects.
var projectDirs = []string{
	"data/documents",
	"data/catalog",
	"data/index",
	"bin",
}

// Init creates the project directory structure for the engine.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Project directories initialized.")
	return nil
}

const (
	binDir  = "bin"
	binName = "transfer-engine"
	cmdPkg  = "./cmd/transfer-engine"
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

// seedDocuments is a small articulation fixture covering direct,
// multi-course, honors-pair, and no-articulation cases.
const seedDocuments = `documents:
  - receiving_course: "CSE 8A"
    receiving_title: "Introduction to Programming 1"
    group: "1"
    group_title: "Computer Science Core"
    group_logic_type: "choose_one_section"
    section: "A"
    logic_block:
      options:
        - courses:
            - course_letters: "CIS 22A"
              honors: false
        - courses:
            - course_letters: "CIS 22AH"
              honors: true
  - receiving_course: "CSE 8B"
    receiving_title: "Introduction to Programming 2"
    group: "1"
    group_title: "Computer Science Core"
    group_logic_type: "choose_one_section"
    section: "A"
    logic_block:
      options:
        - courses:
            - course_letters: "CIS 22B"
              honors: false
  - receiving_course: "CSE 11"
    receiving_title: "Accelerated Introduction to Programming"
    group: "1"
    group_title: "Computer Science Core"
    group_logic_type: "choose_one_section"
    section: "B"
    logic_block:
      options:
        - courses:
            - course_letters: "CIS 35A"
              honors: false
            - course_letters: "CIS 36B"
              honors: false
  - receiving_course: "CSE 21"
    receiving_title: "Mathematics for Algorithms and Systems"
    logic_block:
      no_articulation: true
      no_articulation_reason: "Must be completed at the receiving institution."
`

// seedSendingCatalog lists the sending-institution courses used above.
const seedSendingCatalog = `- code: "CIS 22A"
  title: "Beginning Programming Methodologies in C++"
  units: 4.5
- code: "CIS 22AH"
  title: "Beginning Programming Methodologies in C++ - HONORS"
  is_honors: true
  units: 4.5
- code: "CIS 22B"
  title: "Intermediate Programming Methodologies in C++"
  units: 4.5
- code: "CIS 35A"
  title: "Java Programming"
  units: 4.5
- code: "CIS 36B"
  title: "Intermediate Problem Solving in Java"
  units: 4.5
`

// seedReceivingCatalog lists the receiving-institution courses used above.
const seedReceivingCatalog = `- code: "CSE 8A"
  title: "Introduction to Programming 1"
  units: 4
- code: "CSE 8B"
  title: "Introduction to Programming 2"
  units: 4
- code: "CSE 11"
  title: "Accelerated Introduction to Programming"
  units: 4
- code: "CSE 21"
  title: "Mathematics for Algorithms and Systems"
  units: 4
`

// Seed writes example articulation documents and catalogs into data/, then
// prints the ingest command to run next.
func Seed() error {
	mg.Deps(Init)
	files := map[string]string{
		"data/documents/cse-core.yaml": seedDocuments,
		"data/catalog/sending.yaml":    seedSendingCatalog,
		"data/catalog/receiving.yaml":  seedReceivingCatalog,
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Println("  ", path)
	}
	fmt.Println("Seed data written. Run: transfer-engine store")
	return nil
}

// Stats prints project metrics: Go production/test LOC and stored document
// counts when the database exists.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	return nil
}

// countGoLines walks the directory tree and counts non-blank lines in Go
// files. If testOnly is true, count only _test.go files; otherwise count
// non-test .go files.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if info.Name() == "_examples" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		isTest := strings.HasSuffix(path, "_test.go")
		if testOnly != isTest {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				total++
			}
		}
		return nil
	})
	return total, err
}
