// Package main generates the Markdown reference for the docguard CLI and
// its documentation rules.
//
// Usage:
//
//	go run ./scripts/gendocs -gen=cli -outdir=docs/cli
//	go run ./scripts/gendocs -gen=rules -outdir=docs/rules
//	go run ./scripts/gendocs -gen=all
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
)

var (
	genFlag    = flag.String("gen", "all", "what to generate: cli, rules, all")
	outDirFlag = flag.String("outdir", "", "output directory (defaults based on gen type)")
)

func main() {
	flag.Parse()

	validGenFlags := map[string]bool{"cli": true, "rules": true, "all": true}
	if !validGenFlags[*genFlag] {
		log.Fatalf("unknown -gen value: %s (use: cli, rules, all)", *genFlag)
	}

	projectRoot, err := findProjectRoot()
	if err != nil {
		log.Fatalf("failed to find project root: %v", err)
	}
	log.Printf("Project root: %s", projectRoot)

	outDir := func(def string) string {
		if *outDirFlag != "" && *genFlag != "all" {
			return *outDirFlag
		}
		return filepath.Join(projectRoot, "docs", def)
	}

	if *genFlag == "cli" || *genFlag == "all" {
		if err := generateCLIDocs(outDir("cli")); err != nil {
			log.Fatalf("failed to generate CLI docs: %v", err)
		}
	}
	if *genFlag == "rules" || *genFlag == "all" {
		if err := generateRuleDocs(outDir("rules")); err != nil {
			log.Fatalf("failed to generate rule docs: %v", err)
		}
	}

	log.Println("Done!")
}

// findProjectRoot walks up from current directory to find go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
