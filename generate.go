package main

import (
	"io"
	"log"
	"path/filepath"
)

// Result describes a generated script.
type Result struct {
	Output  string
	Project ProjectDescriptor
	Target  EditorTarget
}

// Generate locates the project, resolves its editor target and writes the
// clean rebuild script into the project root. Nothing is written when no
// .uproject can be found.
func Generate(opts Options) (Result, error) {
	logger := log.New(io.Discard, "", 0)
	if opts.Verbose {
		logger = log.Default()
	}

	root, err := filepath.Abs(opts.ProjectRoot)
	if err != nil {
		return Result{}, err
	}

	project, err := FindProject(root)
	if err != nil {
		return Result{}, err
	}
	logger.Printf("Project descriptor: %s\n", project.Path)

	if opts.Verbose {
		if version, err := GetEngineAssociation(project.Path); err == nil {
			logger.Printf("Engine association: %s\n", version)
		} else {
			logger.Printf("Engine association unknown: %v\n", err)
		}
	}

	target := ResolveEditorTarget(root, project.Name(), opts.Target)
	logger.Printf("Editor target %s (%s)\n", target.Name, target.Source)
	switch target.Source {
	case TargetDetected:
		logger.Printf("Read from %s\n", target.File)
	case TargetDefault:
		logger.Printf("No %s found under %s, assuming %s\n", EditorTargetPattern, filepath.Join(root, sourceDirName), target.Name)
	}

	text, err := RenderBatch(BatchContext{
		ProjectFile:  project.FileName(),
		ProjectName:  project.Name(),
		EditorTarget: target.Name,
	})
	if err != nil {
		return Result{}, err
	}

	output := opts.Output
	if output == "" {
		output = DefaultOutput
	}
	if !filepath.IsAbs(output) {
		output = filepath.Join(root, output)
	}

	if err := WriteBatch(output, text); err != nil {
		return Result{}, err
	}

	return Result{Output: output, Project: project, Target: target}, nil
}
