package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// ProjectPattern matches Unreal project descriptors.
	ProjectPattern = "*.uproject"

	// EditorTargetPattern matches editor target rules files below Source.
	EditorTargetPattern = "*Editor.Target.cs"

	targetSuffix  = ".Target.cs"
	editorSuffix  = "Editor"
	sourceDirName = "Source"
)

// ErrProjectNotFound is returned when the project root holds no .uproject.
var ErrProjectNotFound = fmt.Errorf("project descriptor not found: %w", fs.ErrNotExist)

var errNoEngineAssociation = errors.New("descriptor has no EngineAssociation")

// ProjectDescriptor is a selected .uproject file.
type ProjectDescriptor struct {
	Path string
}

// FileName returns the descriptor's base name, e.g. "Shooter.uproject".
func (p ProjectDescriptor) FileName() string {
	return filepath.Base(p.Path)
}

// Name returns the project name, the descriptor's file stem.
func (p ProjectDescriptor) Name() string {
	name := p.FileName()
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// TargetSource records how an editor target name was obtained.
type TargetSource int

const (
	TargetDefault TargetSource = iota
	TargetDetected
	TargetOverride
)

func (s TargetSource) String() string {
	switch s {
	case TargetDetected:
		return "detected"
	case TargetOverride:
		return "override"
	default:
		return "default"
	}
}

// EditorTarget is the resolved editor target name.
type EditorTarget struct {
	Name   string
	Source TargetSource
	// File is the rules file the name came from, set only when detected.
	File string
}

// FindProject returns the lexicographically first .uproject directly inside
// root. Subdirectories are not searched.
func FindProject(root string) (ProjectDescriptor, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return ProjectDescriptor{}, err
	}

	// ReadDir returns entries sorted by filename
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(ProjectPattern, entry.Name()); ok {
			return ProjectDescriptor{Path: filepath.Join(root, entry.Name())}, nil
		}
	}

	return ProjectDescriptor{}, fmt.Errorf("no .uproject found in %s: %w", root, ErrProjectNotFound)
}

// ResolveEditorTarget picks the editor target for a project. A non-blank
// override wins, otherwise the target is detected from the Source tree.
func ResolveEditorTarget(root, projectName, override string) EditorTarget {
	if name := strings.TrimSpace(override); name != "" {
		return EditorTarget{Name: name, Source: TargetOverride}
	}
	return DetectEditorTarget(root, projectName)
}

// DetectEditorTarget searches root/Source recursively for editor target rules
// files and derives the target name from the first one found in sorted order.
// When Source is missing or holds no match, it falls back to
// "<projectName>Editor". It never fails.
func DetectEditorTarget(root, projectName string) EditorTarget {
	matches := findTargetFiles(filepath.Join(root, sourceDirName))
	if len(matches) == 0 {
		return EditorTarget{Name: projectName + editorSuffix, Source: TargetDefault}
	}

	first := matches[0]
	return EditorTarget{
		Name:   strings.ReplaceAll(filepath.Base(first), targetSuffix, ""),
		Source: TargetDetected,
		File:   first,
	}
}

func findTargetFiles(sourceDir string) []string {
	// WalkDir does not follow a symlinked root, so resolve it first
	walkRoot, err := filepath.EvalSymlinks(sourceDir)
	if err != nil {
		return nil
	}

	var matches []string
	filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// unreadable subdirectories are skipped
			if d != nil && d.IsDir() && path != walkRoot {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if ok, _ := filepath.Match(EditorTargetPattern, d.Name()); ok {
			rel, err := filepath.Rel(walkRoot, path)
			if err != nil {
				return nil
			}
			matches = append(matches, filepath.Join(sourceDir, rel))
		}
		return nil
	})

	sort.Slice(matches, func(i, j int) bool {
		return lessPath(matches[i], matches[j])
	})
	return matches
}

// lessPath orders paths component by component, so "A/x" sorts before "A.b/y".
func lessPath(a, b string) bool {
	pa := strings.Split(filepath.ToSlash(a), "/")
	pb := strings.Split(filepath.ToSlash(b), "/")
	for i := 0; i < len(pa) && i < len(pb); i++ {
		if pa[i] != pb[i] {
			return pa[i] < pb[i]
		}
	}
	return len(pa) < len(pb)
}

// GetEngineAssociation returns a .uproject engine association.
//
// Path argument can be either a .uproject file or directory containing one.
func GetEngineAssociation(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", err
	}

	if fi.IsDir() {
		project, err := FindProject(path)
		if err != nil {
			return "", err
		}
		path = project.Path
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var uproject struct {
		EngineAssociation string
	}

	if err := json.NewDecoder(f).Decode(&uproject); err != nil {
		return "", fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	if uproject.EngineAssociation == "" {
		return "", errNoEngineAssociation
	}

	return uproject.EngineAssociation, nil
}
